package quiz

import (
	"encoding/json"
	"math/rand/v2"
	"sync"
	"time"
)

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](rnd *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample shuffles the whole of items in place and returns the first n.
// A pool smaller than n is returned whole.
func Sample[T any](rnd *rand.Rand, items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	Shuffle(rnd, items)
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}

// Sampler owns a random source shared by concurrent requests.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rnd: rand.New(src)}
}

func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func NewTimeSeededSampler() *Sampler {
	return NewSeededSampler(uint64(time.Now().UnixNano()))
}

func (s *Sampler) Sample(items []json.RawMessage, n int) []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Sample(s.rnd, items, n)
}
