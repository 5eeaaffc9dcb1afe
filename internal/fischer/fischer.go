// Package fischer maps Chess960 starting positions to and from their
// identifiers in [0, 959] and builds uniformly random starting positions.
//
// The numbering is the Scharnagl scheme shifted to start at zero: the
// standard chess position RNBQKBNR is 518. Every function here is a pure
// function of its arguments; the only state a caller can share between
// goroutines is a Source passed to Generate or Random.
package fischer

import "github.com/joakim/fischer960/internal/chess"

const (
	// NumPositions is the number of legal Chess960 starting positions.
	NumPositions = 960

	// MaxID is the largest valid identifier. IDs are zero-based, so 960 is invalid.
	MaxID = NumPositions - 1

	// NoID is returned by Encode alongside an error.
	NoID = -1

	// StandardID is the identifier of the standard chess starting position.
	StandardID = 518
)

// Radices of the mixed-radix identifier, least significant first:
// 16 bishop pairs, 6 queen slots, 10 king/rook/knight patterns.
const (
	bishopRadix = 16
	queenRadix  = 6
	krnRadix    = 10
)

// krnPatterns lists the order of kings, rooks and knights once the queen and
// bishops are removed. The order matches the lexicographic ranking of the two
// knight slots among five free squares used by Decode.
var krnPatterns = [krnRadix]string{
	"NNRKR", "NRNKR", "NRKNR", "NRKRN", "RNNKR",
	"RNKNR", "RNKRN", "RKNNR", "RKNRN", "RKRNN",
}

// bishopPairs holds the sixteen legal bishop placements as two-digit base-8
// numbers: first bishop square, then last bishop square.
var bishopPairs = [bishopRadix]int{
	0o01, 0o03, 0o05, 0o07,
	0o12, 0o23, 0o25, 0o27,
	0o14, 0o34, 0o45, 0o47,
	0o16, 0o36, 0o56, 0o67,
}

// Placement order for the pieces that fill the last free squares.
var (
	queenAndKnights = [...]chess.Piece{chess.Queen, chess.Knight, chess.Knight}
	rookKingRook    = [...]chess.Piece{chess.Rook, chess.King, chess.Rook}
)

// Standard returns the standard chess starting arrangement.
func Standard() chess.Arrangement {
	a, _ := Decode(StandardID)
	return a
}

// All returns every starting arrangement, indexed by identifier.
func All() [NumPositions]chess.Arrangement {
	var all [NumPositions]chess.Arrangement
	for id := range all {
		all[id], _ = Decode(id)
	}
	return all
}

// Twin returns the identifier of the mirrored starting position.
func Twin(id int) (int, error) {
	a, err := Decode(id)
	if err != nil {
		return NoID, err
	}
	return Encode(a.Mirror())
}
