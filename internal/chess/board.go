package chess

// Board is the shared public contract both the map-backed reference
// engine and the bitboard engine satisfy. Boards are immutable values:
// every state-changing method returns a new Board instead of mutating
// the receiver.
type Board interface {
	// ToPlay is the side to move.
	ToPlay() Color
	// AllPieces lists every occupied square, unordered.
	AllPieces() []Placement
	// AllMoves enumerates every legal move for the side to move.
	AllMoves() []Move
	// Play applies m, returning the resulting board iff m is legal.
	Play(m Move) (Board, bool)
	// Check reports whether the side to move's king is attacked.
	Check() bool
	// Checkmate reports Check() with no legal replies.
	Checkmate() bool
	// Castling returns the rights still available on this board.
	Castling() CastlingRights
	// EnPassant returns the current en-passant target, if any.
	EnPassant() EnPassantTarget
}

// Status summarizes a board as a reader would describe it: "ongoing",
// "check", "checkmate", or "stalemate". Checkmate and stalemate are
// both no-legal-moves positions, distinguished only by Check().
func Status(b Board) string {
	inCheck := b.Check()
	hasMoves := len(b.AllMoves()) > 0
	switch {
	case inCheck && !hasMoves:
		return "checkmate"
	case inCheck:
		return "check"
	case !hasMoves:
		return "stalemate"
	default:
		return "ongoing"
	}
}
