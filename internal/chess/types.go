// Package chess implements a chess board representation and legal-move
// engine: two independent representations, a map-backed reference board
// and a bitboard-backed board, satisfying the same Board interface.
package chess

import (
	"fmt"
	"strings"
)

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is one of the six chess piece kinds.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Piece is a colored piece; there are exactly 12 distinct values.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// Square is a board position, index = rank*8 + file, 0..63. Rank 0 is
// White's back rank, file 0 is the a-file.
type Square uint8

// NewSquare builds a Square from a coordinate pair, rejecting anything
// outside 0..7. This is the sole operation that reports ErrInvalidPosition.
func NewSquare(rank, file int) (Square, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return 0, fmt.Errorf("%w: rank=%d file=%d", ErrInvalidPosition, rank, file)
	}
	return Square(rank*8 + file), nil
}

// Rank returns the 0..7 rank of the square.
func (s Square) Rank() int { return int(s) >> 3 }

// File returns the 0..7 file of the square.
func (s Square) File() int { return int(s) & 7 }

// Coord is the inverse of NewSquare.
func (s Square) Coord() (rank, file int) { return s.Rank(), s.File() }

// Mask returns the single-bit Bitboard representation of the square.
func (s Square) Mask() Bitboard { return Bitboard(1) << uint(s) }

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.File()), s.Rank()+1)
}

// ParseSquare parses a two-character algebraic square such as "e4".
func ParseSquare(text string) (Square, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 2 {
		return 0, false
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	sq, err := NewSquare(rank, file)
	if err != nil {
		return 0, false
	}
	return sq, true
}

// MoveKind distinguishes the two variants of the Move tagged union.
type MoveKind uint8

const (
	StandardMove MoveKind = iota
	CastleMove
)

// CastlingSide names a side of the board a castle targets.
type CastlingSide uint8

const (
	Kingside CastlingSide = iota
	Queenside
)

func (cs CastlingSide) String() string {
	if cs == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// Move is a tagged union: Standard(src, dst) or Castle(side).
type Move struct {
	Kind MoveKind
	From Square
	To   Square
	Side CastlingSide
}

// NewStandardMove constructs a non-castling move.
func NewStandardMove(from, to Square) Move {
	return Move{Kind: StandardMove, From: from, To: to}
}

// NewCastleMove constructs a castling move for the given side.
func NewCastleMove(side CastlingSide) Move {
	return Move{Kind: CastleMove, Side: side}
}

func (m Move) String() string {
	if m.Kind == CastleMove {
		return m.Side.String()
	}
	return m.From.String() + m.To.String()
}

// CastlingRights is a bitmask of the four independent castling booleans.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// RightFor maps a (color, side) pair to its CastlingRights bit.
func RightFor(c Color, side CastlingSide) CastlingRights {
	switch {
	case c == White && side == Kingside:
		return WhiteKingside
	case c == White && side == Queenside:
		return WhiteQueenside
	case c == Black && side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// RightsFor returns both rights belonging to a color.
func RightsFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

func (cr CastlingRights) With(r CastlingRights) CastlingRights { return cr | r }

func (cr CastlingRights) Without(r CastlingRights) CastlingRights { return cr &^ r }

// String renders in FEN order KQkq, "-" when no rights remain.
func (cr CastlingRights) String() string {
	var sb strings.Builder
	if cr.Has(WhiteKingside) {
		sb.WriteByte('K')
	}
	if cr.Has(WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if cr.Has(BlackKingside) {
		sb.WriteByte('k')
	}
	if cr.Has(BlackQueenside) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// EnPassantTarget is the optional square behind a pawn that just
// advanced two squares.
type EnPassantTarget struct {
	sq    Square
	valid bool
}

// NoEnPassant is the absent en-passant target.
func NoEnPassant() EnPassantTarget { return EnPassantTarget{} }

// NewEnPassant wraps a square as a present en-passant target.
func NewEnPassant(sq Square) EnPassantTarget { return EnPassantTarget{sq: sq, valid: true} }

// Valid reports whether an en-passant target is present.
func (e EnPassantTarget) Valid() bool { return e.valid }

// Square returns the target square, if present.
func (e EnPassantTarget) Square() (Square, bool) { return e.sq, e.valid }

func (e EnPassantTarget) String() string {
	if !e.valid {
		return "-"
	}
	return e.sq.String()
}

// Placement pairs a square with the piece occupying it.
type Placement struct {
	Square Square
	Piece  Piece
}
