package rules

import (
	"encoding/binary"
	"hash/fnv"
)

// Determinism contract: every randomized computation in this package draws
// from an explicitly supplied uint64 seed. Given identical (state, action,
// seed) inputs, two independent invocations (optimistic client vs the
// authoritative settlement layer) produce byte-identical results. Nothing
// here touches an ambient random source.

// cellRoll produces the 0-99 roll for one map cell. This is the exact
// linear-congruential step the authoritative layer uses, so a locally
// generated map matches the settled one for the same seed.
func cellRoll(seed uint64, index int) uint64 {
	cellSeed := seed + uint64(index)
	return (cellSeed*1103515245 + 12345) % 100
}

// splitmix64 is a single step of the SplitMix64 generator. It is used to
// expand an action seed into independent draws.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// unitFloat maps a seed to a uniform float64 in [0, 1).
func unitFloat(seed uint64) float64 {
	return float64(splitmix64(seed)>>11) / float64(1<<53)
}

// varianceFactor draws the bounded combat variance multiplier from
// [1-v, 1+v]. One band is applied consistently at every call site.
func varianceFactor(seed uint64, v float64) float64 {
	return 1 - v + 2*v*unitFloat(seed)
}

// actionSeed derives a per-action seed from the game seed and the state's
// progress counters, salted per action kind. Both sides of the simulation
// derive the same stream without exchanging extra data.
func actionSeed(gameSeed uint64, turn, playerIndex int, salt uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], gameSeed)
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(turn))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(playerIndex))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], salt)
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
