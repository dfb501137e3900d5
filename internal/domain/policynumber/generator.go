// Package policynumber generates the public, human-facing policy number.
//
// Format: a 4-digit zero-padded random component in [1, 9999] followed by the
// unix timestamp in seconds, bounded to entities.NumeroMaxLength characters.
package policynumber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apolices_xpto/internal/domain/entities"
)

// MaxAttempts bounds the collision retry loop.
const MaxAttempts = 5

var ErrExhaustedAttempts = errors.New("could not generate a unique policy number")

// RandomSource is satisfied by *math/rand.Rand and SystemRandom.
type RandomSource interface {
	Intn(n int) int
}

type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function (e.g. time.Now) to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ExistenceChecker reports whether a policy number is already taken. The
// check is advisory; the unique constraint in storage has the final word.
type ExistenceChecker interface {
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
}

type Generator struct {
	random  RandomSource
	clock   Clock
	checker ExistenceChecker
}

func NewGenerator(random RandomSource, clock Clock, checker ExistenceChecker) *Generator {
	return &Generator{random: random, clock: clock, checker: checker}
}

// Candidate builds one candidate number from a fresh random draw and the clock.
func (g *Generator) Candidate() string {
	candidate := fmt.Sprintf("%04d%d", g.random.Intn(9999)+1, g.clock.Now().Unix())
	if len(candidate) > entities.NumeroMaxLength {
		candidate = candidate[:entities.NumeroMaxLength]
	}
	return candidate
}

// Generate returns a number not held by any persisted policy, retrying with a
// fresh random draw on collision. A collision on the last attempt returns
// ErrExhaustedAttempts.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		candidate := g.Candidate()
		taken, err := g.checker.ExistsByNumero(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking policy number %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrExhaustedAttempts
}
