package policynumber

import (
	"math/rand/v2"
	"time"
)

// SystemRandom draws from the goroutine-safe global source.
type SystemRandom struct{}

func (SystemRandom) Intn(n int) int {
	return rand.IntN(n)
}

// NewSystemGenerator wires the generator used in production.
func NewSystemGenerator(checker ExistenceChecker) *Generator {
	return NewGenerator(SystemRandom{}, ClockFunc(time.Now), checker)
}
