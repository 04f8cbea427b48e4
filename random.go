package idgen

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// NewV4 returns a random UUID with 122 bits read from r.
func NewV4(r io.Reader) (UUID, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return Nil, fmt.Errorf("idgen: read random UUID: %w", err)
	}
	return UUID(id), nil
}

// NewV8 returns the custom UUID carrying data verbatim, except for the
// version nibble and the variant bits which are overwritten.
func NewV8(data [16]byte) UUID {
	id := UUID(data)
	id.setVersion(VersionCustom)
	return id
}
