package idgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
)

var errNilRequest = errors.New("idgen: nil request")

// Request describes what to generate. It is one of UUIDRequest,
// ULIDRequest or ObjectIDRequest.
type Request interface {
	// Kind names the identifier family: "uuid", "ulid" or "oid".
	Kind() string
}

// UUIDRequest carries the parameters of a UUID. Optional parameters are nil
// when absent. Which of them apply depends on Version:
//
//	1, 6  Timestamp, NodeID (a pseudo MAC is drawn when nil)
//	3, 5  Namespace and Name, both required
//	4     nothing
//	7     Timestamp
//	8     Data, required
type UUIDRequest struct {
	Version   Version
	Timestamp *Timestamp
	Namespace *Namespace
	Name      *string
	NodeID    *NodeID
	Data      *[16]byte
}

// Kind returns "uuid".
func (UUIDRequest) Kind() string { return "uuid" }

// ULIDRequest carries an optional fixed timestamp in Unix milliseconds.
type ULIDRequest struct {
	Timestamp *uint64
}

// Kind returns "ulid".
func (ULIDRequest) Kind() string { return "ulid" }

// ObjectIDRequest carries an optional fixed timestamp in Unix seconds.
type ObjectIDRequest struct {
	Timestamp *uint32
}

// Kind returns "oid".
func (ObjectIDRequest) Kind() string { return "oid" }

// Validate rejects parameter combinations that are meaningless for the
// requested identifier. It returns an *ArgError naming the first offending
// argument.
func Validate(req Request) error {
	switch r := req.(type) {
	case UUIDRequest:
		return validateUUID(r)
	case ULIDRequest:
		if r.Timestamp != nil && *r.Timestamp > ulid.MaxTime() {
			return argErrorf("timestamp", ErrOutOfRange,
				"timestamp must be between 0 and %d milliseconds", ulid.MaxTime())
		}
	}
	return nil
}

func validateUUID(r UUIDRequest) error {
	if !r.Version.Supported() {
		return argErrorf("version", ErrInvalidVersion,
			"UUID version must be one of 1, 3, 4, 5, 6, 7, 8, got %d", r.Version)
	}

	if r.Timestamp != nil && !r.Version.HasTimestamp() {
		return argErrorf("timestamp", ErrIncompatibleArguments,
			"timestamp cannot be used with UUID version %d, only with versions 1, 6 and 7", r.Version)
	}

	switch r.Version {
	case VersionNameBasedMD5, VersionNameBasedSHA1:
		if r.Namespace == nil {
			return argErrorf("namespace", ErrMissingRequiredArgument,
				"namespace is required for UUID version %d", r.Version)
		}
		if r.Name == nil {
			return argErrorf("name", ErrMissingRequiredArgument,
				"name is required for UUID version %d", r.Version)
		}
	case VersionCustom:
		if r.Data == nil {
			return argErrorf("data", ErrMissingRequiredArgument,
				"data is required for UUID version %d", r.Version)
		}
	}
	return nil
}

// NewGenerator validates req and resolves it into a Generator reading
// randomness from crypto/rand.
func NewGenerator(req Request) (Generator, error) {
	return NewGeneratorWithReader(req, rand.Reader)
}

// NewGeneratorWithReader is NewGenerator with a custom random source for
// the UUID and ULID engines. ObjectIds always use the BSON primitive's own
// process-unique randomness.
func NewGeneratorWithReader(req Request, r io.Reader) (Generator, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	switch req := req.(type) {
	case UUIDRequest:
		return newUUIDGenerator(req, r)
	case ULIDRequest:
		return NewULIDGeneratorWithReader(req.Timestamp, r), nil
	case ObjectIDRequest:
		return NewObjectIDGenerator(req.Timestamp), nil
	case nil:
		return nil, errNilRequest
	}
	return nil, fmt.Errorf("idgen: unsupported request type %T", req)
}
