package chess

import (
	"chesscore/internal/fen"
)

// InitBoard materialises the standard starting position on the default
// engine (bitboard).
func InitBoard() Board { return InitBitBoard() }

// CreatePos is the public coordinate constructor; it is the sole
// operation that raises ErrInvalidPosition instead of returning an
// absent value.
func CreatePos(rank, file int) (Square, error) { return NewSquare(rank, file) }

// PosToCoord is CreatePos's inverse.
func PosToCoord(s Square) (rank, file int) { return s.Coord() }

// FENToSquare parses a two-character algebraic square such as "e4".
func FENToSquare(text string) (Square, bool) { return ParseSquare(text) }

// FENDecode parses a FEN string into a Board on the default engine.
// It returns false on any syntactic mismatch; the caller's existing
// board, if any, is never touched.
func FENDecode(text string) (Board, bool) { return FENDecodeWith(text, NewBitBoard) }

// boardConstructor is the shape shared by NewMapBoard and NewBitBoard,
// letting FENDecodeWith build onto either engine.
type boardConstructor func([]Placement, Color, CastlingRights, EnPassantTarget) Board

// FENDecodeWith parses FEN text onto a caller-chosen engine
// constructor, so the same codec serves both the map-backed and
// bitboard-backed boards.
func FENDecodeWith(text string, newBoard boardConstructor) (Board, bool) {
	pos, ok := fen.Decode(text)
	if !ok {
		return nil, false
	}
	placements := make([]Placement, 0, len(pos.Placements))
	for _, pl := range pos.Placements {
		placements = append(placements, Placement{
			Square: Square(pl.Square),
			Piece:  pieceFromFEN(pl.Piece),
		})
	}
	turn := Black
	if pos.WhiteToMove {
		turn = White
	}
	castling, ok := castlingFromFEN(pos.Castling)
	if !ok {
		return nil, false
	}
	ep, ok := enPassantFromFEN(pos.EnPassant)
	if !ok {
		return nil, false
	}
	return newBoard(placements, turn, castling, ep), true
}

// FENEncode renders a Board's placement, side to move, castling
// rights, and en-passant target back into a FEN string.
func FENEncode(b Board) string {
	pieces := b.AllPieces()
	placements := make([]fen.Placement, 0, len(pieces))
	for _, pl := range pieces {
		placements = append(placements, fen.Placement{
			Square: int(pl.Square),
			Piece:  pieceToFEN(pl.Piece),
		})
	}
	return fen.Encode(fen.Position{
		Placements:  placements,
		WhiteToMove: b.ToPlay() == White,
		Castling:    b.Castling().String(),
		EnPassant:   b.EnPassant().String(),
	})
}

func pieceFromFEN(p fen.Piece) Piece {
	c := Black
	if p.White {
		c = White
	}
	var kind PieceKind
	switch p.Kind {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	}
	return Piece{Color: c, Kind: kind}
}

func pieceToFEN(p Piece) fen.Piece {
	var letter byte
	switch p.Kind {
	case Pawn:
		letter = 'p'
	case Knight:
		letter = 'n'
	case Bishop:
		letter = 'b'
	case Rook:
		letter = 'r'
	case Queen:
		letter = 'q'
	case King:
		letter = 'k'
	}
	return fen.Piece{White: p.Color == White, Kind: letter}
}

func castlingFromFEN(s string) (CastlingRights, bool) {
	var cr CastlingRights
	if s == "-" {
		return cr, true
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= WhiteKingside
		case 'Q':
			cr |= WhiteQueenside
		case 'k':
			cr |= BlackKingside
		case 'q':
			cr |= BlackQueenside
		default:
			return 0, false
		}
	}
	return cr, true
}

func enPassantFromFEN(s string) (EnPassantTarget, bool) {
	if s == "-" {
		return NoEnPassant(), true
	}
	sq, ok := ParseSquare(s)
	if !ok {
		return EnPassantTarget{}, false
	}
	return NewEnPassant(sq), true
}

// ToPlay is the side to move on b.
func ToPlay(b Board) Color { return b.ToPlay() }

// AllPieces lists every occupied square on b, unordered.
func AllPieces(b Board) []Placement { return b.AllPieces() }

// AllMoves enumerates every legal move for the side to move on b.
func AllMoves(b Board) []Move { return b.AllMoves() }

// Play applies m to b, returning the resulting board iff m is legal.
func Play(b Board, m Move) (Board, bool) { return b.Play(m) }

// Check reports whether b's side to move is in check.
func Check(b Board) bool { return b.Check() }

// Checkmate reports Check(b) with no legal replies.
func Checkmate(b Board) bool { return b.Checkmate() }
