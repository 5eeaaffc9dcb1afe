// Package engine converts Chess960 starting arrangements to and from FEN.
package engine

import (
	"fmt"
	"strings"

	"github.com/joakim/fischer960/internal/chess"
	"github.com/joakim/fischer960/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Fixed ranks of every starting position.
const (
	blackPawns = "pppppppp"
	whitePawns = "PPPPPPPP"
	emptyRank  = "8"
)

// StartingFEN returns the FEN of the starting position built on a.
// Castling rights are written as KQkq (X-FEN) or, with shredder set, as the
// files of the rooks (Shredder-FEN).
func StartingFEN(a chess.Arrangement, shredder bool) string {
	var sb strings.Builder

	writePiecePositions(&sb, a)
	sb.WriteString(" w ")
	if shredder {
		writeShredderCastlingRights(&sb, a)
	} else {
		sb.WriteString("KQkq")
	}
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement field, rank 8 first.
func writePiecePositions(sb *strings.Builder, a chess.Arrangement) {
	sb.WriteString(a.Lower())
	sb.WriteByte('/')
	sb.WriteString(blackPawns)
	for i := 0; i < 4; i++ {
		sb.WriteByte('/')
		sb.WriteString(emptyRank)
	}
	sb.WriteByte('/')
	sb.WriteString(whitePawns)
	sb.WriteByte('/')
	sb.WriteString(a.String())
}

// ArrangementFromFEN reads the back rank of a starting-position FEN. Rank 1
// must hold eight white pieces, rank 8 the same pieces in black, ranks 2 and
// 7 full pawn rows and the rest empty. Whether the back rank is a legal
// Chess960 start is left to the caller.
func ArrangementFromFEN(fen string) (chess.Arrangement, error) {
	var a chess.Arrangement

	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return a, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != chess.RankSize {
		return a, fmt.Errorf("want %d ranks, got %d: %w", chess.RankSize, len(ranks), errors.ErrInvalidFEN)
	}

	white := ranks[7]
	if strings.ToUpper(white) != white {
		return a, fmt.Errorf("rank 1 %q holds black pieces: %w", white, errors.ErrInvalidFEN)
	}
	a, err := chess.ParseArrangement(white)
	if err != nil {
		return a, fmt.Errorf("rank 1: %v: %w", err, errors.ErrInvalidFEN)
	}
	if ranks[0] != a.Lower() {
		return a, fmt.Errorf("rank 8 %q does not mirror rank 1 %q: %w", ranks[0], white, errors.ErrInvalidFEN)
	}
	if ranks[1] != blackPawns || ranks[6] != whitePawns {
		return a, fmt.Errorf("pawn ranks are not full: %w", errors.ErrInvalidFEN)
	}
	for _, r := range ranks[2:6] {
		if r != emptyRank {
			return a, fmt.Errorf("rank %q should be empty: %w", r, errors.ErrInvalidFEN)
		}
	}

	if err := parseSideToMove(parts); err != nil {
		return a, err
	}
	if err := parseCastlingRights(a, parts); err != nil {
		return a, err
	}

	return a, nil
}

// parseSideToMove checks the side to move field; a starting position has white to move.
func parseSideToMove(parts []string) error {
	if len(parts) < 2 || parts[1] == "w" {
		return nil
	}
	return fmt.Errorf("invalid side to move for a starting position: %s: %w", parts[1], errors.ErrInvalidFEN)
}
