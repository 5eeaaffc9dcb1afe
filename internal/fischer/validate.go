package fischer

import (
	"fmt"
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// IsValidID reports whether id names a starting position.
func IsValidID(id int) bool {
	return id >= 0 && id <= MaxID
}

// IsValidArrangement reports whether pieces form a legal Chess960 back rank.
// It never panics: wrong lengths and unknown pieces are simply invalid.
func IsValidArrangement(pieces []chess.Piece) bool {
	return Validate(pieces) == nil
}

// IsValid reports whether a is a legal Chess960 back rank.
func IsValid(a chess.Arrangement) bool {
	return Validate(a[:]) == nil
}

// IsValidString reports whether s, in either letter case, spells a legal
// Chess960 back rank.
func IsValidString(s string) bool {
	pieces, err := chess.ParsePieces(s)
	if err != nil {
		return false
	}
	return IsValidArrangement(pieces)
}

// Validate returns nil for a legal back rank, or an *errors.ArrangementError
// naming the first rule the pieces break.
func Validate(pieces []chess.Piece) error {
	if len(pieces) != chess.RankSize {
		return invalid(pieces, fmt.Sprintf("want %d pieces, got %d", chess.RankSize, len(pieces)))
	}

	var counts [chess.NumPieceValues]int
	for i, p := range pieces {
		if p <= chess.NoPiece || p >= chess.NumPieceValues {
			return invalid(pieces, fmt.Sprintf("no piece at square %d", i))
		}
		counts[p]++
	}
	for p := chess.King; p < chess.NumPieceValues; p++ {
		if counts[p] != chess.Multiplicity[p] {
			return invalid(pieces, fmt.Sprintf("want %d %s, got %d", chess.Multiplicity[p], p, counts[p]))
		}
	}

	// Square parity is square colour.
	firstBishop, lastBishop := bounds(pieces, chess.Bishop)
	if (lastBishop-firstBishop)%2 == 0 {
		return invalid(pieces, "bishops on same-coloured squares")
	}

	firstRook, lastRook := bounds(pieces, chess.Rook)
	king, _ := bounds(pieces, chess.King)
	if king < firstRook || king > lastRook {
		return invalid(pieces, "king is not between the rooks")
	}

	return nil
}

// bounds returns the first and last squares holding p.
func bounds(pieces []chess.Piece, p chess.Piece) (first, last int) {
	first, last = -1, -1
	for i, q := range pieces {
		if q != p {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	return first, last
}

func invalid(pieces []chess.Piece, reason string) error {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteByte(p.Letter())
	}
	return &errors.ArrangementError{Input: sb.String(), Reason: reason}
}
