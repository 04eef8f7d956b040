// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// rng.go: deterministic random streams shared by every builder.
//
// Goals:
//   - Determinism: same seed ⇒ identical maze on every driving mode.
//   - Replayability: each stream counts its draws so a snapshot can record
//     (seed, draws) and a restore can fast-forward to the same state.
//   - Independence: secondary streams (imperfect toggles) are derived with a
//     SplitMix64 mix so they never correlate with the carving stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each builder owns its streams.
package builder

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveSeed.
const (
	streamToggle uint64 = 1
)

// countingSource wraps the stdlib source and counts every 64-bit draw.
// Both Int63 and Uint64 advance the underlying generator by exactly one
// step, so replaying `draws` Uint64 calls reproduces the state.
type countingSource struct {
	src   rand.Source64
	seed  int64
	draws uint64
}

func newCountingSource(seed int64) *countingSource {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return &countingSource{src: rand.NewSource(seed).(rand.Source64), seed: seed}
}

func (c *countingSource) Int63() int64 {
	c.draws++
	return c.src.Int63()
}

func (c *countingSource) Uint64() uint64 {
	c.draws++
	return c.src.Uint64()
}

func (c *countingSource) Seed(seed int64) {
	c.src.Seed(seed)
	c.seed = seed
	c.draws = 0
}

// RNGState is the replayable position of one random stream.
type RNGState struct {
	Seed  int64  `json:"seed"`
	Draws uint64 `json:"draws"`
}

// stream couples a *rand.Rand with the source it draws from.
type stream struct {
	src *countingSource
	rng *rand.Rand
}

// newStream returns a deterministic stream. Policy: seed==0 ⇒ defaultRNGSeed.
//
// Complexity: O(1).
func newStream(seed int64) *stream {
	src := newCountingSource(seed)
	return &stream{src: src, rng: rand.New(src)}
}

// restoreStream rebuilds a stream and fast-forwards it by st.Draws.
//
// Complexity: O(st.Draws).
func restoreStream(st RNGState) *stream {
	s := newStream(st.Seed)
	for i := uint64(0); i < st.Draws; i++ {
		s.src.src.Uint64()
	}
	s.src.draws = st.Draws
	return s
}

func (s *stream) state() RNGState {
	return RNGState{Seed: s.src.seed, Draws: s.src.draws}
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
