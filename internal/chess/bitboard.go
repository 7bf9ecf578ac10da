package chess

// Bitboard represents a 64-bit set of squares.
type Bitboard uint64

// BB returns a bitboard with only s set.
func BB(s Square) Bitboard { return Bitboard(1) << uint(s) }

func (b Bitboard) Empty() bool { return b == 0 }

func (b Bitboard) Has(s Square) bool { return b&BB(s) != 0 }

func (b Bitboard) Add(s Square) Bitboard { return b | BB(s) }

func (b Bitboard) Remove(s Square) Bitboard { return b &^ BB(s) }

// PopLSB returns the lowest-indexed set square and the bitboard with it
// cleared.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	lsb := b & -b
	if lsb == 0 {
		return 0, 0
	}
	idx := Square(bitScan(lsb))
	return idx, b ^ lsb
}

// LSB returns the lowest-indexed set square, if any.
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return 0, false
	}
	lsb := b & -b
	return Square(bitScan(lsb)), true
}

// MSB returns the highest-indexed set square, if any. It isolates the
// top bit by smearing every bit below the highest set bit ("fill
// downward" with successive doubling shifts) and then reuses the same
// de Bruijn bit-scan table as LSB, rather than reaching for a second
// unrelated technique.
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return 0, false
	}
	x := uint64(b)
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	top := x ^ (x >> 1) // isolates the single highest set bit
	return Square(bitScan(Bitboard(top))), true
}

// Iter calls fn for every set square, from lowest to highest index.
func (b Bitboard) Iter(fn func(Square)) {
	bb := b
	for bb != 0 {
		sq, rest := bb.PopLSB()
		fn(sq)
		bb = rest
	}
}

// bitScan is a constant-time bit-scan-forward via de Bruijn
// multiplication: isolate the target bit, multiply by a de Bruijn
// constant, and use the top 6 bits of the product to index a
// precomputed permutation table.
func bitScan(x Bitboard) int {
	const debruijn = 0x03f79d71b4cb0a89
	index := (uint64(x) * debruijn) >> 58
	return debruijnIndex[index]
}

var debruijnIndex = [64]int{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

// File/rank edge masks used to stop knight/king/pawn shifts wrapping
// across board edges.
const (
	fileABB Bitboard = 0x0101010101010101
	fileHBB Bitboard = fileABB << 7
	rank1BB Bitboard = 0xFF
	rank8BB Bitboard = rank1BB << (8 * 7)

	notAFile  = ^fileABB
	notHFile  = ^fileHBB
	notABFile = ^(fileABB | fileABB<<1)
	notGHFile = ^(fileHBB | fileHBB>>1)
)
