package fischer

import "github.com/joakim/fischer960/internal/chess"

// Generate builds a random starting arrangement directly, without going
// through an identifier. It follows the single-die method: one bishop on a
// dark square, one on a light square, then the queen and both knights on
// free squares, and finally rook, king, rook on what is left, in that order.
// Each of the 960 arrangements is equally likely when src is uniform.
// A nil src means DefaultSource.
func Generate(src Source) chess.Arrangement {
	src = sourceOrDefault(src)

	var a chess.Arrangement

	dark := newSquareSet(0, 2, 4, 6)
	light := newSquareSet(1, 3, 5, 7)
	a[dark.take(draw(src, dark.len()))] = chess.Bishop
	a[light.take(draw(src, light.len()))] = chess.Bishop

	free := mergeSquareSets(dark, light)
	for _, p := range queenAndKnights {
		a[free.take(draw(src, free.len()))] = p
	}
	for _, p := range rookKingRook {
		a[free.take(0)] = p
	}

	return a
}

// RandomID returns a uniform identifier in [0, 959].
func RandomID(src Source) int {
	return draw(sourceOrDefault(src), NumPositions)
}

// Random returns a uniform identifier together with its arrangement.
func Random(src Source) (int, chess.Arrangement) {
	id := RandomID(src)
	a, _ := Decode(id)
	return id, a
}
