package idgen

import (
	"encoding/binary"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDGenerator generates MongoDB/BSON ObjectIds: a 4-byte big-endian
// timestamp in seconds, a 5-byte random value unique to the process and a
// 3-byte counter.
type ObjectIDGenerator struct {
	timestamp *uint32
}

// NewObjectIDGenerator returns a generator using the current time, or the
// fixed timestamp in seconds when it is non-nil.
func NewObjectIDGenerator(timestamp *uint32) *ObjectIDGenerator {
	g := &ObjectIDGenerator{}
	if timestamp != nil {
		sec := *timestamp
		g.timestamp = &sec
	}
	return g
}

// New returns the next ObjectId.
//
// With a fixed timestamp a complete ObjectId is still drawn on every call
// and only its first four bytes are replaced, so the process-unique value
// and the counter advance exactly as they do without one.
func (g *ObjectIDGenerator) New() primitive.ObjectID {
	oid := primitive.NewObjectID()
	if g.timestamp != nil {
		binary.BigEndian.PutUint32(oid[0:4], *g.timestamp)
	}
	return oid
}

// Generate implements Generator.
func (g *ObjectIDGenerator) Generate() (string, error) {
	return g.New().Hex(), nil
}
