package game

// Scanned coordinates are tracked per player as a bit-packed grid index
// (index = x*size + y), matching the authoritative account layout: 13
// bytes cover a 10x10 board.

// CoordinateScanned reports whether (x, y) is marked in the bit-packed set.
func CoordinateScanned(scanned []byte, x, y, size int) bool {
	if x < 0 || y < 0 || x >= size || y >= size {
		return false
	}
	index := x*size + y
	byteIdx := index / 8
	if byteIdx >= len(scanned) {
		return false
	}
	return scanned[byteIdx]&(1<<(index%8)) != 0
}

// MarkCoordinateScanned sets (x, y) in the bit-packed set, growing it as
// needed. Out-of-board coordinates are ignored.
func MarkCoordinateScanned(scanned []byte, x, y, size int) []byte {
	if x < 0 || y < 0 || x >= size || y >= size {
		return scanned
	}
	index := x*size + y
	byteIdx := index / 8
	for len(scanned) <= byteIdx {
		scanned = append(scanned, 0)
	}
	scanned[byteIdx] |= 1 << (index % 8)
	return scanned
}
