package monopoly

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// Dice produces one roll of two six-sided dice.
type Dice interface {
	Roll() entity.DiceRoll
}

// Shuffler produces a random permutation of [0, n).
type Shuffler interface {
	Perm(n int) []int
}

// RandomDice rolls from a seeded math/rand source. It is safe for concurrent use.
type RandomDice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomDice - seeds the source; a zero seed is replaced by one read from crypto/rand.
func NewRandomDice(seed int64) *RandomDice {
	if seed == 0 {
		seed = cryptoSeed()
	}

	return &RandomDice{rng: rand.New(rand.NewSource(seed))} //nolint: gosec // game dice, not secrets
}

func (that *RandomDice) Roll() entity.DiceRoll {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.DiceRoll{Die1: that.rng.Intn(6) + 1, Die2: that.rng.Intn(6) + 1}
}

func (that *RandomDice) Perm(n int) []int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Perm(n)
}

// Intn - exposes the source for callers picking among options.
func (that *RandomDice) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 1
	}

	return int64(binary.LittleEndian.Uint64(buf[:]) & (1<<63 - 1))
}
