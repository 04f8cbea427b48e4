package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"
)

const maxV7Millis = 1<<48 - 1

// V7Generator is a thread-safe UUIDv7 generator that ensures monotonicity
// within the same millisecond by using a counter with random data.
type V7Generator struct {
	mu            sync.Mutex
	started       bool
	lastTimestamp uint64
	clockSeq      uint16 // 12-bit counter for sub-millisecond ordering
	randReader    io.Reader
}

// NewV7Generator creates a new UUIDv7 generator with crypto/rand as the random source
func NewV7Generator() *V7Generator {
	return &V7Generator{
		randReader: rand.Reader,
	}
}

// NewV7GeneratorWithReader creates a new UUIDv7 generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewV7GeneratorWithReader(r io.Reader) *V7Generator {
	return &V7Generator{
		randReader: r,
	}
}

// New generates a new UUIDv7 with the current timestamp.
func (g *V7Generator) New() (UUID, error) {
	return g.NewWithMillis(uint64(time.Now().UnixMilli()))
}

// NewWithTimestamp generates a new UUIDv7 carrying ts truncated to
// milliseconds. The millisecond is never advanced, see NewAtMillis.
func (g *V7Generator) NewWithTimestamp(ts Timestamp) (UUID, error) {
	return g.NewAtMillis(ts.unixMilli())
}

// NewWithMillis generates a new UUIDv7 with the specified Unix millisecond
// timestamp, masked to 48 bits. A timestamp at or before the previous one
// continues the previous millisecond with an incremented counter, so the
// generator never goes backwards.
func (g *V7Generator) NewWithMillis(timestamp uint64) (UUID, error) {
	timestamp &= maxV7Millis

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if g.started && timestamp <= g.lastTimestamp {
		timestamp = g.lastTimestamp
		g.clockSeq++
		// Counter overflow (> 12 bits) borrows the next millisecond
		if g.clockSeq > 0xFFF {
			g.clockSeq = 0
			timestamp = (g.lastTimestamp + 1) & maxV7Millis
			g.lastTimestamp = timestamp
		}
	} else if err := g.seed(timestamp); err != nil {
		return Nil, err
	}

	return g.encode(timestamp)
}

// NewAtMillis generates a new UUIDv7 whose timestamp field is exactly the
// given Unix millisecond, masked to 48 bits. Repeated calls with the same
// millisecond increment the counter; when it overflows the counter is
// reseeded instead of borrowing the next millisecond, so ordering within
// the millisecond restarts and uniqueness rests on the 62 random bits.
func (g *V7Generator) NewAtMillis(timestamp uint64) (UUID, error) {
	timestamp &= maxV7Millis

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started && timestamp == g.lastTimestamp && g.clockSeq < 0xFFF {
		g.clockSeq++
	} else if err := g.seed(timestamp); err != nil {
		return Nil, err
	}

	return g.encode(timestamp)
}

// seed starts a new millisecond with a random counter. g.mu must be held.
func (g *V7Generator) seed(timestamp uint64) error {
	/*
	 *The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
	 *random data, such as from a cryptographically secure random number generator.
	 */
	var randBytes [2]byte
	if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
		return fmt.Errorf("idgen: read v7 counter seed: %w", err)
	}
	g.clockSeq = binary.BigEndian.Uint16(randBytes[:]) & 0xFFF // 12 bits
	g.lastTimestamp = timestamp
	g.started = true
	return nil
}

// encode lays out timestamp, the current counter and fresh random bits.
// g.mu must be held.
func (g *V7Generator) encode(timestamp uint64) (UUID, error) {
	var uuid UUID

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Encode version (4 bits) and clock_seq_hi (12 bits) - bytes 6-7
	// Version 7 = 0111
	uuid[6] = byte(0x70 | (g.clockSeq >> 8)) // version (4 bits) + clock_seq_hi (4 bits)
	uuid[7] = byte(g.clockSeq)               // clock_seq_lo (8 bits)

	// Generate random data for bytes 8-15 (64 bits)
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return uuid, fmt.Errorf("idgen: read v7 random: %w", err)
	}

	// Set variant to RFC 4122 (10xx xxxx)
	uuid[8] = (uuid[8] & 0x3F) | 0x80

	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = idgen.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultV7Generator is the package-level generator used by NewV7
var defaultV7Generator = NewV7Generator()

// NewV7 generates a new UUIDv7 using the package-level generator.
func NewV7() (UUID, error) {
	return defaultV7Generator.New()
}
