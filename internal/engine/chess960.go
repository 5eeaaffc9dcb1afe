package engine

import (
	"fmt"
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// Variant names used in output.
const (
	VariantStandard = "Standard"
	VariantChess960 = "Chess960"
)

// IsChess960Position returns true if a differs from the standard starting arrangement.
func IsChess960Position(a chess.Arrangement) bool {
	return StartingFEN(a, false) != InitialFEN
}

// Variant returns the PGN Variant tag value for a game starting from a.
func Variant(a chess.Arrangement) string {
	if IsChess960Position(a) {
		return VariantChess960
	}
	return VariantStandard
}

// rookFiles returns the queen-side and king-side rook files.
func rookFiles(a chess.Arrangement) (queenSide, kingSide byte) {
	return byte('a' + a.Index(chess.Rook)), byte('a' + a.LastIndex(chess.Rook))
}

// writeShredderCastlingRights writes castling rights using Shredder notation (file letters).
func writeShredderCastlingRights(sb *strings.Builder, a chess.Arrangement) {
	if a.Index(chess.Rook) < 0 {
		sb.WriteByte('-')
		return
	}
	queenSide, kingSide := rookFiles(a)

	// White castling rights (uppercase file letters)
	sb.WriteByte(kingSide - 'a' + 'A')
	sb.WriteByte(queenSide - 'a' + 'A')

	// Black castling rights (lowercase file letters)
	sb.WriteByte(kingSide)
	sb.WriteByte(queenSide)
}

// parseCastlingRights checks the castling field against the rook files.
// KQkq, Shredder file letters and "-" are accepted.
func parseCastlingRights(a chess.Arrangement, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	queenSide, kingSide := rookFiles(a)
	for _, c := range parts[2] {
		switch {
		case strings.ContainsRune("KQkq", c):
		case c >= 'A' && c <= 'H':
			if f := byte(c) - 'A' + 'a'; f != queenSide && f != kingSide {
				return fmt.Errorf("castling file %c has no white rook: %w", c, errors.ErrInvalidFEN)
			}
		case c >= 'a' && c <= 'h':
			if f := byte(c); f != queenSide && f != kingSide {
				return fmt.Errorf("castling file %c has no black rook: %w", c, errors.ErrInvalidFEN)
			}
		default:
			return fmt.Errorf("invalid castling character %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}
