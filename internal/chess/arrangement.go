package chess

import (
	"fmt"
	"strings"

	"github.com/joakim/fischer960/internal/errors"
)

// RankSize is the number of squares on a rank.
const RankSize = 8

// Arrangement is a back rank read from the a-file to the h-file.
// It is a value type; all methods return fresh copies.
type Arrangement [RankSize]Piece

// String returns the arrangement as uppercase letters, e.g. "RNBQKBNR".
func (a Arrangement) String() string {
	var sb strings.Builder
	sb.Grow(RankSize)
	for _, p := range a {
		sb.WriteByte(p.Letter())
	}
	return sb.String()
}

// Lower returns the arrangement as lowercase letters, the way black's
// back rank is written in FEN.
func (a Arrangement) Lower() string {
	return strings.ToLower(a.String())
}

// Mirror returns the left-right reflection of the arrangement.
func (a Arrangement) Mirror() Arrangement {
	var m Arrangement
	for i, p := range a {
		m[RankSize-1-i] = p
	}
	return m
}

// Unicode renders the arrangement with chess glyphs of the given colour.
func (a Arrangement) Unicode(c Colour) string {
	var sb strings.Builder
	for _, p := range a {
		sb.WriteRune(p.Glyph(c))
	}
	return sb.String()
}

// Pieces returns the arrangement as a slice.
func (a Arrangement) Pieces() []Piece {
	pieces := make([]Piece, RankSize)
	copy(pieces, a[:])
	return pieces
}

// Index returns the first square holding p, or -1.
func (a Arrangement) Index(p Piece) int {
	for i, q := range a {
		if q == p {
			return i
		}
	}
	return -1
}

// LastIndex returns the last square holding p, or -1.
func (a Arrangement) LastIndex(p Piece) int {
	for i := RankSize - 1; i >= 0; i-- {
		if a[i] == p {
			return i
		}
	}
	return -1
}

// ParsePieces converts letters in either case to pieces. Any length is
// accepted; an unknown letter is an error.
func ParsePieces(s string) ([]Piece, error) {
	pieces := make([]Piece, 0, len(s))
	for i := 0; i < len(s); i++ {
		p, ok := PieceFromLetter(s[i])
		if !ok {
			return nil, &errors.ArrangementError{
				Input:  s,
				Reason: fmt.Sprintf("unknown piece letter %q at square %d", s[i], i),
			}
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// ParseArrangement reads exactly eight piece letters. It checks the shape
// only; whether the rank is a legal start is decided elsewhere.
func ParseArrangement(s string) (Arrangement, error) {
	var a Arrangement
	pieces, err := ParsePieces(s)
	if err != nil {
		return a, err
	}
	if len(pieces) != RankSize {
		return a, &errors.ArrangementError{
			Input:  s,
			Reason: fmt.Sprintf("want %d pieces, got %d", RankSize, len(pieces)),
		}
	}
	copy(a[:], pieces)
	return a, nil
}

// FromPieces copies an eight-piece slice into an Arrangement.
func FromPieces(pieces []Piece) (Arrangement, bool) {
	var a Arrangement
	if len(pieces) != RankSize {
		return a, false
	}
	copy(a[:], pieces)
	return a, true
}
