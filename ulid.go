package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULIDs: a 48-bit millisecond timestamp followed by
// 80 random bits, rendered as 26 Crockford base32 characters.
type ULIDGenerator struct {
	timestamp  *uint64
	randReader io.Reader
}

// NewULIDGenerator returns a generator stamping every ULID with the current
// time, or with the fixed millisecond timestamp when it is non-nil. The
// random part is drawn again on every call either way.
func NewULIDGenerator(timestamp *uint64) *ULIDGenerator {
	return NewULIDGeneratorWithReader(timestamp, rand.Reader)
}

// NewULIDGeneratorWithReader is NewULIDGenerator with a custom entropy source.
func NewULIDGeneratorWithReader(timestamp *uint64, r io.Reader) *ULIDGenerator {
	g := &ULIDGenerator{randReader: r}
	if timestamp != nil {
		ms := *timestamp
		g.timestamp = &ms
	}
	return g
}

// New returns the next ULID.
func (g *ULIDGenerator) New() (ulid.ULID, error) {
	ms := ulid.Timestamp(time.Now())
	if g.timestamp != nil {
		ms = *g.timestamp
	}
	id, err := ulid.New(ms, g.randReader)
	if err != nil {
		return id, fmt.Errorf("idgen: generate ULID: %w", err)
	}
	return id, nil
}

// Generate implements Generator.
func (g *ULIDGenerator) Generate() (string, error) {
	id, err := g.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
