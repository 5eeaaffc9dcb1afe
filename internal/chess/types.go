// Package chess provides the piece and back-rank types shared by fischer960.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a back-rank piece type.
type Piece int

const (
	NoPiece Piece = iota // Unset square
	King
	Queen
	Rook
	Bishop
	Knight
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'?', 'K', 'Q', 'R', 'B', 'N'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Glyph returns the Unicode chess symbol for the piece in the given colour.
func (p Piece) Glyph(c Colour) rune {
	white := []rune{'?', '♔', '♕', '♖', '♗', '♘'}
	black := []rune{'?', '♚', '♛', '♜', '♝', '♞'}
	if p < 0 || int(p) >= len(white) {
		return '?'
	}
	if c == Black {
		return black[p]
	}
	return white[p]
}

// PieceFromLetter converts a SAN letter in either case to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	default:
		return NoPiece, false
	}
}

// Multiplicity is the number of times each piece occurs on a back rank.
var Multiplicity = [NumPieceValues]int{
	King:   1,
	Queen:  1,
	Rook:   2,
	Bishop: 2,
	Knight: 2,
}
