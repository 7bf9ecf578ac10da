// Package fen implements the Forsyth-Edwards Notation codec: the four
// whitespace-separated fields this engine models (piece placement,
// side to move, castling availability, en-passant target). It knows
// nothing about bitboards or map occupancy - callers translate the
// neutral Position this package produces into whichever Board backend
// they run, and the reverse for encoding.
package fen

import (
	"strconv"
	"strings"
)

// Piece is a bare (color, kind) pair using FEN's own letters, so this
// package never needs to import the engine it serves.
type Piece struct {
	White bool
	Kind  byte // one of 'p', 'n', 'b', 'r', 'q', 'k' (always lowercase)
}

// Placement pairs a 0..63 square index with the piece occupying it.
type Placement struct {
	Square int
	Piece  Piece
}

// Position is the neutral, engine-agnostic result of decoding (and the
// input to encoding) a FEN string's first four fields.
type Position struct {
	Placements  []Placement
	WhiteToMove bool
	Castling    string // subset of "KQkq" in that order, or "-"
	EnPassant   string // algebraic square, lowercase, or "-"
}

var pieceLetters = map[byte]byte{
	'p': 'p', 'n': 'n', 'b': 'b', 'r': 'r', 'q': 'q', 'k': 'k',
}

// Decode parses a FEN string's first four whitespace-separated fields:
// piece placement, side to move, castling availability, en-passant
// target. It returns false on any syntactic mismatch. Trailing fields
// (halfmove/fullmove counters) are ignored if present but their
// absence is not an error.
func Decode(s string) (Position, bool) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return Position{}, false
	}
	placements, ok := decodePlacement(fields[0])
	if !ok {
		return Position{}, false
	}
	whiteToMove, ok := decodeSideToMove(fields[1])
	if !ok {
		return Position{}, false
	}
	castling, ok := decodeCastling(fields[2])
	if !ok {
		return Position{}, false
	}
	ep, ok := decodeEnPassant(fields[3])
	if !ok {
		return Position{}, false
	}
	return Position{Placements: placements, WhiteToMove: whiteToMove, Castling: castling, EnPassant: ep}, true
}

func decodePlacement(field string) ([]Placement, bool) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, false
	}
	var out []Placement
	for i, rankField := range ranks {
		rank := 7 - i // FEN lists rank 7 (index 7) down to rank 0 first
		file := 0
		for _, r := range rankField {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
				lower := r | 0x20
				kind, ok := pieceLetters[byte(lower)]
				if !ok || file > 7 {
					return nil, false
				}
				out = append(out, Placement{
					Square: rank*8 + file,
					Piece:  Piece{White: r < 'a', Kind: kind},
				})
				file++
			default:
				return nil, false
			}
		}
		if file != 8 {
			return nil, false
		}
	}
	return out, true
}

func decodeSideToMove(field string) (bool, bool) {
	switch strings.ToLower(field) {
	case "w":
		return true, true
	case "b":
		return false, true
	default:
		return false, false
	}
}

func decodeCastling(field string) (string, bool) {
	if field == "-" {
		return "-", true
	}
	seen := map[byte]bool{}
	var sb strings.Builder
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c != 'K' && c != 'Q' && c != 'k' && c != 'q' {
			return "", false
		}
		if seen[c] {
			return "", false
		}
		seen[c] = true
	}
	for _, c := range "KQkq" {
		if seen[byte(c)] {
			sb.WriteRune(c)
		}
	}
	if sb.Len() == 0 {
		return "-", true
	}
	return sb.String(), true
}

func decodeEnPassant(field string) (string, bool) {
	if field == "-" {
		return "-", true
	}
	field = strings.ToLower(field)
	if len(field) != 2 {
		return "", false
	}
	if field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return "", false
	}
	return field, true
}

// Encode renders a Position back into FEN text, coalescing empty-square
// runs to a single decimal digit per rank.
func Encode(p Position) string {
	byRank := make([]string, 8)
	grid := make(map[int]Piece, len(p.Placements))
	for _, pl := range p.Placements {
		grid[pl.Square] = pl.Piece
	}
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		empty := 0
		for file := 0; file < 8; file++ {
			pc, ok := grid[rank*8+file]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pc.Kind
			if pc.White {
				letter = letter &^ 0x20
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		byRank[7-rank] = sb.String()
	}

	var out strings.Builder
	out.WriteString(strings.Join(byRank, "/"))
	out.WriteByte(' ')
	if p.WhiteToMove {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}
	out.WriteByte(' ')
	if p.Castling == "" {
		out.WriteString("-")
	} else {
		out.WriteString(p.Castling)
	}
	out.WriteByte(' ')
	if p.EnPassant == "" {
		out.WriteString("-")
	} else {
		out.WriteString(p.EnPassant)
	}
	return out.String()
}
