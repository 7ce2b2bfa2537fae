package services

import (
	"math/rand"
	"time"
)

// Source supplies the randomness behind the demo generators. Production uses
// math/rand; tests inject a scripted sequence to pin down shapes.
type Source interface {
	Intn(n int) int
}

// NewRandSource returns a time-seeded Source.
func NewRandSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
