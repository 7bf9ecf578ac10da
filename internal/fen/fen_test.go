package fen

import "testing"

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq -",
		"8/P7/8/8/8/8/8/k6K w - -",
		"7k/5Q2/6K1/8/8/8/8/8 b - -",
	}
	for _, f := range cases {
		pos, ok := Decode(f)
		if !ok {
			t.Fatalf("Decode rejected %q", f)
		}
		if got := Encode(pos); got != f {
			t.Errorf("round trip: got %q, want %q", got, f)
		}
	}
}

func TestDecodeIgnoresTrailingCounters(t *testing.T) {
	pos, ok := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if !ok {
		t.Fatal("Decode should ignore trailing halfmove/fullmove fields")
	}
	if !pos.WhiteToMove {
		t.Fatal("expected white to move")
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
	}
	for _, f := range bad {
		if _, ok := Decode(f); ok {
			t.Errorf("expected Decode(%q) to fail", f)
		}
	}
}

func TestDecodeCastlingNormalizesOrder(t *testing.T) {
	pos, ok := Decode("8/8/8/8/8/8/8/8 w qKQk -")
	if !ok {
		t.Fatal("Decode rejected a scrambled but valid castling field")
	}
	if pos.Castling != "KQkq" {
		t.Fatalf("Castling = %q, want normalized %q", pos.Castling, "KQkq")
	}
}

func TestDecodePlacementSquareIndices(t *testing.T) {
	pos, ok := Decode("8/8/8/8/8/8/8/R7 w - -")
	if !ok {
		t.Fatal("Decode rejected a single-rook position")
	}
	if len(pos.Placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(pos.Placements))
	}
	pl := pos.Placements[0]
	if pl.Square != 0 {
		t.Fatalf("a1 should be square index 0, got %d", pl.Square)
	}
	if !pl.Piece.White || pl.Piece.Kind != 'r' {
		t.Fatalf("got %+v, want a white rook", pl.Piece)
	}
}
