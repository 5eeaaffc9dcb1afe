package fischer

import (
	"github.com/joakim/fischer960/internal/chess"
)

// Encode returns the identifier of a starting arrangement. Invalid input
// yields NoID and an error wrapping errors.ErrInvalidArrangement, never 0.
//
// The identifier is krn*96 + queen*16 + bishops, where krn ranks the order of
// kings, rooks and knights, queen is the queen's slot among the six
// non-bishop pieces and bishops ranks the pair of bishop squares.
func Encode(a chess.Arrangement) (int, error) {
	if err := Validate(a[:]); err != nil {
		return NoID, err
	}

	var krn [5]byte
	n, slot, queen := 0, 0, 0
	for _, p := range a {
		switch p {
		case chess.Bishop:
			continue
		case chess.Queen:
			queen = slot
		default:
			krn[n] = p.Letter()
			n++
		}
		slot++
	}

	pair := a.Index(chess.Bishop)*8 + a.LastIndex(chess.Bishop)

	return indexOf(krnPatterns[:], string(krn[:]))*queenRadix*bishopRadix +
		queen*bishopRadix +
		indexOf(bishopPairs[:], pair), nil
}

// EncodeString parses letters in either case and encodes them.
func EncodeString(s string) (int, error) {
	pieces, err := chess.ParsePieces(s)
	if err != nil {
		return NoID, err
	}
	if err := Validate(pieces); err != nil {
		return NoID, err
	}
	a, _ := chess.FromPieces(pieces)
	return Encode(a)
}

// indexOf returns the position of v in table. The tables are complete for
// validated input, so a miss is a programming error.
func indexOf[T comparable](table []T, v T) int {
	for i, t := range table {
		if t == v {
			return i
		}
	}
	panic("fischer: incomplete lookup table")
}
