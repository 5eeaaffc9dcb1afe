package fischer

import (
	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// Decode returns the starting arrangement named by id. IDs outside
// [0, 959] yield an error wrapping errors.ErrInvalidID.
func Decode(id int) (chess.Arrangement, error) {
	var a chess.Arrangement
	if !IsValidID(id) {
		return a, errors.Wrapf(errors.ErrInvalidID, "id %d outside [0, %d]", id, MaxID)
	}

	free := allSquares()

	// Light-squared bishop on b, d, f or h.
	q2, b1 := id/4, id%4
	a[free.remove(b1*2+1)] = chess.Bishop

	// Dark-squared bishop on a, c, e or g.
	q3, b2 := q2/4, q2%4
	a[free.remove(b2*2)] = chess.Bishop

	q4, q := q3/queenRadix, q3%queenRadix
	a[free.take(q)] = chess.Queen

	// Take the higher slot first so the lower one still points at the same square.
	first, second := knightSlots(q4)
	a[free.take(second)] = chess.Knight
	a[free.take(first)] = chess.Knight

	for _, p := range rookKingRook {
		a[free.take(0)] = p
	}

	return a, nil
}

// knightSlots returns the k-th two-element combination of the five free
// squares left after the queen, in lexicographic order:
// (0,1) (0,2) (0,3) (0,4) (1,2) (1,3) (1,4) (2,3) (2,4) (3,4).
func knightSlots(k int) (first, second int) {
	const free = 5
	for first = 0; first < free-1; first++ {
		span := free - 1 - first
		if k < span {
			return first, first + 1 + k
		}
		k -= span
	}
	panic("fischer: knight rank out of range")
}
