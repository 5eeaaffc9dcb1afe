package fischer

import "github.com/joakim/fischer960/internal/chess"

// squareSet is an ascending set of free squares that shrinks as pieces are
// placed. Each placement builds its own; nothing is shared.
type squareSet struct {
	squares [chess.RankSize]int
	n       int
}

// newSquareSet returns a set holding squares, which must be ascending.
func newSquareSet(squares ...int) squareSet {
	var s squareSet
	s.n = copy(s.squares[:], squares)
	return s
}

// allSquares returns the set of every square on the rank.
func allSquares() squareSet {
	return newSquareSet(0, 1, 2, 3, 4, 5, 6, 7)
}

// mergeSquareSets returns the ascending union of two disjoint sets.
func mergeSquareSets(a, b squareSet) squareSet {
	var s squareSet
	i, j := 0, 0
	for i < a.n || j < b.n {
		if j == b.n || (i < a.n && a.squares[i] < b.squares[j]) {
			s.squares[s.n] = a.squares[i]
			i++
		} else {
			s.squares[s.n] = b.squares[j]
			j++
		}
		s.n++
	}
	return s
}

func (s *squareSet) len() int {
	return s.n
}

// at returns the i-th free square without removing it.
func (s *squareSet) at(i int) int {
	return s.squares[:s.n][i]
}

// take removes the i-th free square and returns it.
func (s *squareSet) take(i int) int {
	sq := s.at(i)
	copy(s.squares[i:s.n], s.squares[i+1:s.n])
	s.n--
	return sq
}

// remove deletes square sq and returns it.
func (s *squareSet) remove(sq int) int {
	for i := 0; i < s.n; i++ {
		if s.squares[i] == sq {
			return s.take(i)
		}
	}
	panic("fischer: square already occupied")
}
