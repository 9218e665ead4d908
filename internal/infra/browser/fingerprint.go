package browser

import (
	"math/rand/v2"
	"sync"
	"time"
)

type fingerprint struct {
	UserAgent string
	Width     int
	Height    int
}

var fingerprints = []fingerprint{
	{UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36", Width: 1920, Height: 1080},
	{UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36 Edg/130.0.0.0", Width: 1536, Height: 864},
	{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36", Width: 1440, Height: 900},
	{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15", Width: 1680, Height: 1050},
	{UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36", Width: 1366, Height: 768},
}

// jitter hands out fingerprints and inter-action delays. Safe for concurrent use.
type jitter struct {
	mu  sync.Mutex
	rnd *rand.Rand
	min time.Duration
	max time.Duration
}

func newJitter(seed uint64, minDelay, maxDelay time.Duration) *jitter {
	return &jitter{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		min: minDelay,
		max: max(maxDelay, minDelay),
	}
}

func (j *jitter) fingerprint() fingerprint {
	j.mu.Lock()
	defer j.mu.Unlock()
	return fingerprints[j.rnd.IntN(len(fingerprints))]
}

func (j *jitter) delay() time.Duration {
	if j.max <= 0 {
		return 0
	}
	span := j.max - j.min
	if span <= 0 {
		return j.min
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.min + time.Duration(j.rnd.Int64N(int64(span)+1))
}
