// Package lookup holds the reference table of all 960 Chess960 starting
// positions. It is used to cross-check the algorithms in package fischer
// and does not depend on them.
package lookup

import (
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// NumPositions is the number of rows in the table.
const NumPositions = 960

var index = buildIndex()

func buildIndex() map[string]int {
	m := make(map[string]int, NumPositions)
	for id, s := range Positions {
		m[s] = id
	}
	return m
}

// Arrangement returns the table row for id.
func Arrangement(id int) (chess.Arrangement, error) {
	if id < 0 || id >= NumPositions {
		return chess.Arrangement{}, errors.Wrapf(errors.ErrInvalidID, "id %d not in table", id)
	}
	return chess.ParseArrangement(Positions[id])
}

// ID returns the row holding a.
func ID(a chess.Arrangement) (int, error) {
	return IDString(a.String())
}

// IDString returns the row holding s, in either letter case.
func IDString(s string) (int, error) {
	id, ok := index[strings.ToUpper(s)]
	if !ok {
		return -1, &errors.ArrangementError{Input: s, Reason: "not in table"}
	}
	return id, nil
}

// Contains reports whether a is one of the 960 starting positions.
func Contains(a chess.Arrangement) bool {
	_, ok := index[a.String()]
	return ok
}

// Random picks a table row with src, which must return values in [0, n).
func Random(src interface{ IntN(n int) int }) (int, chess.Arrangement) {
	id := src.IntN(NumPositions)
	a, _ := Arrangement(id)
	return id, a
}
