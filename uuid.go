package idgen

import (
	"encoding/hex"
	"time"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionTimeReordered // UUIDv6
	VersionTimeSorted    // UUIDv7
	VersionCustom        // UUIDv8
)

// Supported reports whether the generator can build UUIDs of this version.
// DCE Security (v2) is not supported.
func (v Version) Supported() bool {
	switch v {
	case VersionTimeBased, VersionNameBasedMD5, VersionRandom, VersionNameBasedSHA1,
		VersionTimeReordered, VersionTimeSorted, VersionCustom:
		return true
	}
	return false
}

// HasTimestamp reports whether UUIDs of this version embed a timestamp.
func (v Version) HasTimestamp() bool {
	return v == VersionTimeBased || v == VersionTimeReordered || v == VersionTimeSorted
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// setVersion stamps the version nibble and the RFC 4122 variant bits.
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// ClockSequence returns the 14-bit clock sequence of a v1 or v6 UUID, or -1
// for other versions.
func (u UUID) ClockSequence() int {
	switch u.Version() {
	case VersionTimeBased, VersionTimeReordered:
		return int(u[8]&0x3f)<<8 | int(u[9])
	}
	return -1
}

// NodeID returns the low 48 bits of a v1 or v6 UUID.
func (u UUID) NodeID() NodeID {
	var node NodeID
	switch u.Version() {
	case VersionTimeBased, VersionTimeReordered:
		copy(node[:], u[10:])
	}
	return node
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a v1, v6 or v7 UUID.
// It returns 0 for versions without a timestamp.
func (u UUID) Timestamp() int64 {
	switch u.Version() {
	case VersionTimeSorted:
		// Extract 48-bit timestamp from bytes 0-5
		timestamp := uint64(u[0])<<40 |
			uint64(u[1])<<32 |
			uint64(u[2])<<24 |
			uint64(u[3])<<16 |
			uint64(u[4])<<8 |
			uint64(u[5])
		return int64(timestamp)
	case VersionTimeBased, VersionTimeReordered:
		return u.Time().UnixMilli()
	}
	return 0
}

// Time returns the embedded timestamp as a time.Time for v1, v6 and v7 UUIDs.
// v1 and v6 carry 100ns precision, v7 millisecond precision.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeSorted:
		ms := u.Timestamp()
		return time.Unix(ms/1000, (ms%1000)*1000000)
	case VersionTimeBased, VersionTimeReordered:
		ticks := int64(u.gregorianTicks()) - gregorianOffset
		return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100)
	}
	return time.Time{}
}
