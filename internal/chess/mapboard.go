package chess

// mapBoard is the map-backed reference engine: occupancy is a plain
// Square -> Piece map, and attack generation walks explicit rank/file
// deltas rather than bit tricks. It exists to define semantics in the
// most auditable way possible; the bitboard engine must agree with it.
type mapBoard struct {
	pieces    map[Square]Piece
	turn      Color
	castling  CastlingRights
	enPassant EnPassantTarget
}

// NewMapBoard builds a map-backed Board from a neutral placement list.
func NewMapBoard(placements []Placement, turn Color, castling CastlingRights, ep EnPassantTarget) Board {
	b := &mapBoard{pieces: make(map[Square]Piece, 32), turn: turn, castling: castling, enPassant: ep}
	for _, pl := range placements {
		b.pieces[pl.Square] = pl.Piece
	}
	return b
}

// InitMapBoard materialises the standard starting position.
func InitMapBoard() Board {
	return NewMapBoard(standardPlacements(), White,
		WhiteKingside|WhiteQueenside|BlackKingside|BlackQueenside, NoEnPassant())
}

func (b *mapBoard) ToPlay() Color              { return b.turn }
func (b *mapBoard) Castling() CastlingRights   { return b.castling }
func (b *mapBoard) EnPassant() EnPassantTarget { return b.enPassant }

func (b *mapBoard) clone() *mapBoard {
	nb := &mapBoard{
		pieces:    make(map[Square]Piece, len(b.pieces)),
		turn:      b.turn,
		castling:  b.castling,
		enPassant: b.enPassant,
	}
	for sq, p := range b.pieces {
		nb.pieces[sq] = p
	}
	return nb
}

func (b *mapBoard) AllPieces() []Placement {
	out := make([]Placement, 0, len(b.pieces))
	for sq, p := range b.pieces {
		out = append(out, Placement{Square: sq, Piece: p})
	}
	return out
}

func (b *mapBoard) findKing(c Color) (Square, bool) {
	for sq, p := range b.pieces {
		if p.Color == c && p.Kind == King {
			return sq, true
		}
	}
	return 0, false
}

var (
	knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDeltas   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// stepTargets walks a fixed single-step delta set (knight, king),
// stopping at the board edge and excluding own-color squares.
func (b *mapBoard) stepTargets(sq Square, c Color, deltas [8][2]int) []Square {
	var out []Square
	rank, file := sq.Rank(), sq.File()
	for _, d := range deltas {
		r, f := rank+d[0], file+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		target := Square(r*8 + f)
		if p, occ := b.pieces[target]; !occ || p.Color != c {
			out = append(out, target)
		}
	}
	return out
}

// rayTargets walks a direction set until the edge or the first
// occupied square, including it only if it is an enemy piece.
func (b *mapBoard) rayTargets(sq Square, c Color, deltas [4][2]int) []Square {
	var out []Square
	rank, file := sq.Rank(), sq.File()
	for _, d := range deltas {
		r, f := rank+d[0], file+d[1]
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			target := Square(r*8 + f)
			if p, occ := b.pieces[target]; occ {
				if p.Color != c {
					out = append(out, target)
				}
				break
			}
			out = append(out, target)
			r += d[0]
			f += d[1]
		}
	}
	return out
}

func (b *mapBoard) pawnTargets(sq Square, c Color) []Square {
	var out []Square
	rank, file := sq.Rank(), sq.File()
	forward, startRank := 1, 1
	if c == Black {
		forward, startRank = -1, 6
	}
	if oneRank := rank + forward; oneRank >= 0 && oneRank <= 7 {
		oneSq := Square(oneRank*8 + file)
		if _, occ := b.pieces[oneSq]; !occ {
			out = append(out, oneSq)
			if rank == startRank {
				twoSq := Square((rank+2*forward)*8 + file)
				if _, occ2 := b.pieces[twoSq]; !occ2 {
					out = append(out, twoSq)
				}
			}
		}
	}
	epSq, hasEP := b.enPassant.Square()
	for _, df := range [2]int{-1, 1} {
		cf, cr := file+df, rank+forward
		if cf < 0 || cf > 7 || cr < 0 || cr > 7 {
			continue
		}
		capSq := Square(cr*8 + cf)
		if target, occ := b.pieces[capSq]; occ && target.Color != c {
			out = append(out, capSq)
		} else if hasEP && epSq == capSq {
			out = append(out, capSq)
		}
	}
	return out
}

// pseudoLegalTargets is the full per-piece target set dispatch, shared
// by is_valid, attack detection, and move enumeration.
func (b *mapBoard) pseudoLegalTargets(sq Square) []Square {
	p, ok := b.pieces[sq]
	if !ok {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return b.pawnTargets(sq, p.Color)
	case Knight:
		return b.stepTargets(sq, p.Color, knightDeltas)
	case King:
		return b.stepTargets(sq, p.Color, kingDeltas)
	case Rook:
		return b.rayTargets(sq, p.Color, rookDeltas)
	case Bishop:
		return b.rayTargets(sq, p.Color, bishopDeltas)
	case Queen:
		out := b.rayTargets(sq, p.Color, rookDeltas)
		return append(out, b.rayTargets(sq, p.Color, bishopDeltas)...)
	}
	return nil
}

func (b *mapBoard) isSquareAttacked(sq Square, by Color) bool {
	for from, p := range b.pieces {
		if p.Color != by {
			continue
		}
		if p.Kind == Pawn {
			// Pawns attack only their two forward diagonals, occupied or
			// not; pushes are not attacks.
			forward := 1
			if p.Color == Black {
				forward = -1
			}
			if sq.Rank() == from.Rank()+forward && abs(sq.File()-from.File()) == 1 {
				return true
			}
			continue
		}
		for _, target := range b.pseudoLegalTargets(from) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

func (b *mapBoard) isValidStandard(from, to Square) bool {
	p, ok := b.pieces[from]
	if !ok || p.Color != b.turn {
		return false
	}
	for _, target := range b.pseudoLegalTargets(from) {
		if target == to {
			return true
		}
	}
	return false
}

func (b *mapBoard) castleLegal(c Color, side CastlingSide) bool {
	if !b.castling.Has(RightFor(c, side)) {
		return false
	}
	rank := 0
	if c == Black {
		rank = 7
	}
	var emptyFiles, kingPathFiles []int
	if side == Kingside {
		emptyFiles = []int{5, 6}
		kingPathFiles = []int{4, 5, 6}
	} else {
		emptyFiles = []int{1, 2, 3}
		kingPathFiles = []int{4, 3, 2}
	}
	for _, f := range emptyFiles {
		if _, occ := b.pieces[Square(rank*8+f)]; occ {
			return false
		}
	}
	enemy := c.Opposite()
	for _, f := range kingPathFiles {
		if b.isSquareAttacked(Square(rank*8+f), enemy) {
			return false
		}
	}
	return true
}

func (b *mapBoard) applyStandard(from, to Square) *mapBoard {
	mover, ok := b.pieces[from]
	if !ok {
		return nil
	}
	nb := b.clone()
	delete(nb.pieces, to)

	if mover.Kind == Pawn && from.File() != to.File() {
		if epSq, ok2 := nb.enPassant.Square(); ok2 && epSq == to {
			capRank := to.Rank()
			if mover.Color == White {
				capRank--
			} else {
				capRank++
			}
			delete(nb.pieces, Square(capRank*8+to.File()))
		}
	}

	delete(nb.pieces, from)
	placeKind := mover.Kind
	if mover.Kind == Pawn && ((mover.Color == White && to.Rank() == 7) || (mover.Color == Black && to.Rank() == 0)) {
		placeKind = Queen
	}
	nb.pieces[to] = Piece{Color: mover.Color, Kind: placeKind}

	if mover.Kind == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		behind := (from.Rank() + to.Rank()) / 2
		nb.enPassant = NewEnPassant(Square(behind*8 + from.File()))
	} else {
		nb.enPassant = NoEnPassant()
	}

	nb.castling = clearCastlingRights(nb.castling, from, to)
	return nb
}

func (b *mapBoard) applyCastle(side CastlingSide) *mapBoard {
	c := b.turn
	rank := 0
	if c == Black {
		rank = 7
	}
	kingFrom := Square(rank*8 + 4)
	var rookFrom, rookTo, kingTo Square
	if side == Kingside {
		rookFrom, rookTo, kingTo = Square(rank*8+7), Square(rank*8+5), Square(rank*8+6)
	} else {
		rookFrom, rookTo, kingTo = Square(rank*8+0), Square(rank*8+3), Square(rank*8+2)
	}

	nb := b.clone()
	rookPiece := nb.pieces[rookFrom]
	delete(nb.pieces, rookFrom)
	nb.pieces[rookTo] = rookPiece

	kingPiece := nb.pieces[kingFrom]
	delete(nb.pieces, kingFrom)
	nb.pieces[kingTo] = kingPiece

	nb.enPassant = NoEnPassant()
	nb.castling = nb.castling.Without(RightsFor(c))
	return nb
}

func (b *mapBoard) Play(m Move) (Board, bool) {
	var candidate *mapBoard
	switch m.Kind {
	case StandardMove:
		if !b.isValidStandard(m.From, m.To) {
			return nil, false
		}
		candidate = b.applyStandard(m.From, m.To)
	case CastleMove:
		if !b.castleLegal(b.turn, m.Side) {
			return nil, false
		}
		candidate = b.applyCastle(m.Side)
	default:
		return nil, false
	}
	if candidate == nil {
		return nil, false
	}
	if kingSq, ok := candidate.findKing(b.turn); ok && candidate.isSquareAttacked(kingSq, b.turn.Opposite()) {
		return nil, false
	}
	candidate.turn = b.turn.Opposite()
	return candidate, true
}

func (b *mapBoard) Check() bool {
	kingSq, ok := b.findKing(b.turn)
	if !ok {
		return false
	}
	return b.isSquareAttacked(kingSq, b.turn.Opposite())
}

func (b *mapBoard) Checkmate() bool {
	return b.Check() && len(b.AllMoves()) == 0
}

func (b *mapBoard) AllMoves() []Move {
	var pseudo []Move
	for from, p := range b.pieces {
		if p.Color != b.turn {
			continue
		}
		for _, to := range b.pseudoLegalTargets(from) {
			pseudo = append(pseudo, NewStandardMove(from, to))
		}
	}
	if b.castleLegal(b.turn, Kingside) {
		pseudo = append(pseudo, NewCastleMove(Kingside))
	}
	if b.castleLegal(b.turn, Queenside) {
		pseudo = append(pseudo, NewCastleMove(Queenside))
	}
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := b.Play(m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}
