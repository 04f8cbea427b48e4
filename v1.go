package idgen

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

const (
	// gregorianOffset is the number of 100ns intervals between
	// 1582-10-15 00:00:00 UTC and the Unix epoch.
	gregorianOffset = 0x01B21DD213814000
	ticksPerSecond  = 10_000_000
	ticksMask       = 1<<60 - 1
)

// Timestamp is a point in time as seconds and nanoseconds since the Unix
// epoch. Seconds spans the full unsigned 64-bit range, beyond what
// time.Time can hold.
type Timestamp struct {
	Seconds uint64
	Nanos   uint32
}

// TimestampOf converts t into a Timestamp. Times before the Unix epoch are
// clamped to the epoch.
func TimestampOf(t time.Time) Timestamp {
	if t.Unix() < 0 {
		return Timestamp{}
	}
	return Timestamp{Seconds: uint64(t.Unix()), Nanos: uint32(t.Nanosecond())}
}

// gregorianTicks returns the 60-bit count of 100ns intervals since the
// Gregorian epoch. Overflow wraps modulo 2^60.
func (ts Timestamp) gregorianTicks() uint64 {
	ticks := uint64(gregorianOffset) + ts.Seconds*ticksPerSecond + uint64(ts.Nanos/100)
	return ticks & ticksMask
}

// unixMilli returns the 48-bit Unix millisecond count. Overflow wraps modulo 2^48.
func (ts Timestamp) unixMilli() uint64 {
	return (ts.Seconds*1000 + uint64(ts.Nanos/1_000_000)) & (1<<48 - 1)
}

// gregorianTicks reassembles the 60-bit timestamp of a v1 or v6 UUID.
func (u UUID) gregorianTicks() uint64 {
	switch u.Version() {
	case VersionTimeBased:
		low := uint64(binary.BigEndian.Uint32(u[0:4]))
		mid := uint64(binary.BigEndian.Uint16(u[4:6]))
		hi := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
		return hi<<48 | mid<<32 | low
	case VersionTimeReordered:
		hi := uint64(binary.BigEndian.Uint32(u[0:4]))
		mid := uint64(binary.BigEndian.Uint16(u[4:6]))
		low := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
		return hi<<28 | mid<<12 | low
	}
	return 0
}

// newClockSequence draws a fresh 14-bit clock sequence. No sequence state
// survives between calls; the random draw keeps UUIDs built inside the
// same 100ns tick apart.
func newClockSequence(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("idgen: read clock sequence: %w", err)
	}
	return binary.BigEndian.Uint16(b[:]) & 0x3fff, nil
}

// NewV1 builds a time-based UUID (RFC 9562 section 5.1) from a timestamp,
// a node id and a clock sequence read from r.
func NewV1(ts Timestamp, node NodeID, r io.Reader) (UUID, error) {
	var uuid UUID

	seq, err := newClockSequence(r)
	if err != nil {
		return uuid, err
	}
	ticks := ts.gregorianTicks()

	// time_low (32) | time_mid (16) | version (4) + time_high (12)
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks>>48))
	binary.BigEndian.PutUint16(uuid[8:10], seq)
	copy(uuid[10:], node[:])

	uuid.setVersion(VersionTimeBased)
	return uuid, nil
}

// NewV6 builds a reordered time-based UUID (RFC 9562 section 5.6). The
// timestamp is stored most significant bits first so that the byte order
// sorts by time; clock sequence and node follow the v1 layout.
func NewV6(ts Timestamp, node NodeID, r io.Reader) (UUID, error) {
	var uuid UUID

	seq, err := newClockSequence(r)
	if err != nil {
		return uuid, err
	}
	ticks := ts.gregorianTicks()

	// time_high (32) | time_mid (16) | version (4) + time_low (12)
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>12))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks&0x0fff))
	binary.BigEndian.PutUint16(uuid[8:10], seq)
	copy(uuid[10:], node[:])

	uuid.setVersion(VersionTimeReordered)
	return uuid, nil
}
