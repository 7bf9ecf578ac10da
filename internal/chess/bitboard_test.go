package chess

import "testing"

func TestBitboardLSBAndMSB(t *testing.T) {
	b := BB(3) | BB(10) | BB(40)
	lsb, ok := b.LSB()
	if !ok || lsb != 3 {
		t.Fatalf("LSB = %v, %v; want 3, true", lsb, ok)
	}
	msb, ok := b.MSB()
	if !ok || msb != 40 {
		t.Fatalf("MSB = %v, %v; want 40, true", msb, ok)
	}
}

func TestBitboardLSBMSBEmpty(t *testing.T) {
	var b Bitboard
	if _, ok := b.LSB(); ok {
		t.Fatal("LSB of empty bitboard should report false")
	}
	if _, ok := b.MSB(); ok {
		t.Fatal("MSB of empty bitboard should report false")
	}
}

func TestPopLSBExhausts(t *testing.T) {
	b := BB(1) | BB(5) | BB(9)
	var seen []Square
	for !b.Empty() {
		var sq Square
		sq, b = b.PopLSB()
		seen = append(seen, sq)
	}
	want := []Square{1, 5, 9}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}

func TestIterVisitsEverySetSquare(t *testing.T) {
	b := BB(0) | BB(63) | BB(32)
	var visited []Square
	b.Iter(func(sq Square) { visited = append(visited, sq) })
	if len(visited) != 3 {
		t.Fatalf("visited %v, want 3 squares", visited)
	}
	if visited[0] != 0 || visited[len(visited)-1] != 63 {
		t.Fatalf("visited out of order: %v", visited)
	}
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	sq, _ := NewSquare(3, 3) // d4
	attacks := rookAttacks(sq, 0)
	if attacks.Has(sq) {
		t.Fatal("attacks must not include the rook's own square")
	}
	count := 0
	attacks.Iter(func(Square) { count++ })
	if count != 14 {
		t.Fatalf("got %d targets, want 14 (7 on the rank + 7 on the file)", count)
	}
}

func TestBishopAttacksStopAtFirstBlocker(t *testing.T) {
	sq, _ := NewSquare(0, 0)      // a1
	blocker, _ := NewSquare(3, 3) // d4
	attacks := bishopAttacks(sq, BB(blocker))
	if !attacks.Has(blocker) {
		t.Fatal("the blocking square itself must remain attacked (capturable)")
	}
	beyond, _ := NewSquare(4, 4) // e5, past the blocker
	if attacks.Has(beyond) {
		t.Fatal("attack set must not extend past the first blocker")
	}
}

func TestQueenAttacksUnionsRookAndBishop(t *testing.T) {
	sq, _ := NewSquare(3, 3)
	got := queenAttacks(sq, 0)
	want := rookAttacks(sq, 0) | bishopAttacks(sq, 0)
	if got != want {
		t.Fatal("queen attacks must equal the union of rook and bishop attacks")
	}
}

func TestKnightAttacksFromCorner(t *testing.T) {
	sq, _ := NewSquare(0, 0) // a1
	attacks := knightAttacks(sq)
	count := 0
	attacks.Iter(func(Square) { count++ })
	if count != 2 {
		t.Fatalf("knight on a1 has 2 targets, got %d", count)
	}
}

func TestKingAttacksFromCenter(t *testing.T) {
	sq, _ := NewSquare(3, 3)
	attacks := kingAttacks(sq)
	count := 0
	attacks.Iter(func(Square) { count++ })
	if count != 8 {
		t.Fatalf("king in the center has 8 targets, got %d", count)
	}
}
