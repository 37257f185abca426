// SPDX-License-Identifier: MIT

// Package tensor - deterministic random sources.
//
// Every randomized initializer in the module (FillRandom, random HOOI/HOPM
// seeds, HOPM restarts) draws from a *rand.Rand built here, so equal seeds give
// identical results. math/rand.Rand is not goroutine-safe: parallel workers get
// their own stream from DeriveRand.

package tensor

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// NewRand returns a deterministic generator. seed == 0 selects DefaultSeed.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// mixSeed is a SplitMix64 finalizer over (parent, stream).
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent stream from seed and a stream id.
// Unlike drawing from a shared parent, the result depends only on its inputs,
// so workers may be started in any order.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return NewRand(mixSeed(s, stream))
}
