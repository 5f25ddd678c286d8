package identity

import (
	"fmt"
	"strings"
	"sync"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// Generator produces unique identifiers for configuration entities. Mutators
// receive a Generator instead of reaching for wall-clock time so they stay
// pure and collision-free under rapid successive calls.
type Generator interface {
	NewID(prefix string) string
}

// Random returns a uuid-backed generator. Identifiers look like
// "page-6b9a...", unique across sessions.
func Random() Generator {
	return randomGenerator{}
}

type randomGenerator struct{}

func (randomGenerator) NewID(prefix string) string {
	id := uuid.NewString()
	if strings.TrimSpace(prefix) == "" {
		return id
	}
	return prefix + "-" + id
}

// Deterministic returns a generator deriving stable identifiers from the
// supplied seed plus a per-prefix counter. Two generators constructed with the
// same seed emit the same sequence, which keeps fixtures and golden outputs
// reproducible.
func Deterministic(seed string) Generator {
	return &deterministicGenerator{
		seed:     strings.TrimSpace(seed),
		counters: map[string]int{},
	}
}

type deterministicGenerator struct {
	mu       sync.Mutex
	seed     string
	counters map[string]int
}

func (g *deterministicGenerator) NewID(prefix string) string {
	g.mu.Lock()
	g.counters[prefix]++
	n := g.counters[prefix]
	g.mu.Unlock()

	key := fmt.Sprintf("go-sitebuilder:%s:%s:%d", g.seed, prefix, n)
	if strings.TrimSpace(prefix) == "" {
		return deriveUUID(key).String()
	}
	return prefix + "-" + deriveUUID(key).String()
}

// deriveUUID maps a stable key onto a UUID using go-hashid, falling back to a
// SHA1 name-based UUID when hashid rejects the input.
func deriveUUID(key string) uuid.UUID {
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid
}
