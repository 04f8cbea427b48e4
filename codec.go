package idgen

import (
	"encoding/hex"
	"errors"
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	timestampNanosDigits = 9
	timestampMaxDigits   = 20 + timestampNanosDigits

	payloadBytes     = 16
	payloadMaxDigits = payloadBytes * 2
)

// ParseTimestamp parses a decimal string of 1 to 29 digits into seconds and
// nanoseconds. The trailing 9 digits are the nanoseconds, anything before
// them the seconds; strings of up to 9 digits are nanoseconds only.
func ParseTimestamp(s string) (Timestamp, error) {
	var ts Timestamp

	if len(s) < 1 || len(s) > timestampMaxDigits {
		return ts, argErrorf("timestamp", ErrInvalidLength,
			"timestamp length must be between 1 and %d digits, got %d", timestampMaxDigits, len(s))
	}
	if !isDigits(s) {
		return ts, argErrorf("timestamp", ErrInvalidFormat, "timestamp must contain only digits")
	}

	secPart, nanoPart := "", s
	if len(s) > timestampNanosDigits {
		secPart, nanoPart = s[:len(s)-timestampNanosDigits], s[len(s)-timestampNanosDigits:]
	}

	if secPart != "" {
		sec, err := strconv.ParseUint(secPart, 10, 64)
		if err != nil {
			return ts, argErrorf("timestamp", ErrOutOfRange,
				"timestamp must be a valid non-negative integer between 0 and %d%d",
				uint64(math.MaxUint64), 999999999)
		}
		ts.Seconds = sec
	}
	nanos, err := strconv.ParseUint(nanoPart, 10, 64)
	if err != nil {
		return ts, argErrorf("timestamp", ErrInvalidFormat, "timestamp must contain only digits")
	}
	// at most 9 digits, always below 10^9
	ts.Nanos = uint32(nanos)

	return ts, nil
}

// ParseHexPayload decodes 1 to 32 hex digits into the 16-byte UUIDv8
// payload. Short input is padded on the right with '0' digits, so the
// given digits always land in the leading bytes.
func ParseHexPayload(s string) ([16]byte, error) {
	var data [16]byte

	if len(s) < 1 || len(s) > payloadMaxDigits {
		return data, argErrorf("data", ErrInvalidLength,
			"data length must be between 1 and %d characters, got %d", payloadMaxDigits, len(s))
	}
	full := s + strings.Repeat("0", payloadMaxDigits-len(s))
	if _, err := hex.Decode(data[:], []byte(full)); err != nil {
		return data, argErrorf("data", ErrInvalidFormat, "data must contain only hex characters")
	}
	return data, nil
}

// ParseNodeID parses an EUI-48 MAC address written with colon or hyphen
// separators, e.g. 01:23:45:67:89:ab.
func ParseNodeID(s string) (NodeID, error) {
	var node NodeID

	if !strings.ContainsAny(s, ":-") {
		return node, argErrorf("node-id", ErrInvalidFormat,
			"node id must be a MAC address like 01:23:45:67:89:ab, got %q", s)
	}
	mac, err := net.ParseMAC(s)
	if err != nil || len(mac) != len(node) {
		return node, argErrorf("node-id", ErrInvalidFormat,
			"node id must be a MAC address like 01:23:45:67:89:ab, got %q", s)
	}
	copy(node[:], mac)
	return node, nil
}

// ParseUnixMillis parses a ULID timestamp: a non-negative number of
// milliseconds since the Unix epoch that fits in 48 bits.
func ParseUnixMillis(s string) (uint64, error) {
	if s == "" || !isDigits(s) {
		return 0, argErrorf("timestamp", ErrInvalidFormat, "timestamp must be a non-negative integer")
	}
	ms, err := strconv.ParseUint(s, 10, 64)
	if err != nil || ms > ulid.MaxTime() {
		return 0, argErrorf("timestamp", ErrOutOfRange,
			"timestamp must be between 0 and %d milliseconds", ulid.MaxTime())
	}
	return ms, nil
}

// ParseUnixSeconds parses an ObjectId timestamp: a non-negative number of
// seconds since the Unix epoch that fits in 32 bits.
func ParseUnixSeconds(s string) (uint32, error) {
	if s == "" || !isDigits(s) {
		return 0, argErrorf("timestamp", ErrInvalidFormat, "timestamp must be a non-negative integer")
	}
	sec, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, argErrorf("timestamp", ErrOutOfRange,
				"timestamp must be between 0 and %d seconds", uint32(math.MaxUint32))
		}
		return 0, argErrorf("timestamp", ErrInvalidFormat, "timestamp must be a non-negative integer")
	}
	return uint32(sec), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseVersion parses a UUID version number. Only versions the generator
// supports are accepted.
func ParseVersion(s string) (Version, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || !Version(n).Supported() {
		return 0, argErrorf("version", ErrInvalidVersion,
			"UUID version must be one of 1, 3, 4, 5, 6, 7, 8, got %q", s)
	}
	return Version(n), nil
}
