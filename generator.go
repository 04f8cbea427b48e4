package idgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
)

// Generator produces one identifier string per call. Implementations are
// safe for concurrent use.
type Generator interface {
	Generate() (string, error)
}

var (
	_ Generator = (*UUIDGenerator)(nil)
	_ Generator = (*ULIDGenerator)(nil)
	_ Generator = (*ObjectIDGenerator)(nil)
)

// UUIDGenerator is a resolved UUIDRequest: the version plus the inputs
// that version consumes, fixed for the lifetime of the generator.
type UUIDGenerator struct {
	version    Version
	timestamp  *Timestamp
	namespace  Namespace
	name       string
	node       NodeID
	data       [16]byte
	v7         *V7Generator
	randReader io.Reader
}

func newUUIDGenerator(req UUIDRequest, r io.Reader) (*UUIDGenerator, error) {
	g := &UUIDGenerator{version: req.Version, randReader: r}
	if req.Timestamp != nil {
		ts := *req.Timestamp
		g.timestamp = &ts
	}

	switch req.Version {
	case VersionTimeBased, VersionTimeReordered:
		if req.NodeID != nil {
			g.node = *req.NodeID
		} else {
			node, err := NewPseudoMAC(r)
			if err != nil {
				return nil, err
			}
			g.node = node
		}
	case VersionNameBasedMD5, VersionNameBasedSHA1:
		g.namespace = *req.Namespace
		g.name = *req.Name
	case VersionTimeSorted:
		g.v7 = NewV7GeneratorWithReader(r)
	case VersionCustom:
		g.data = *req.Data
	}
	return g, nil
}

// Version returns the UUID version this generator builds.
func (g *UUIDGenerator) Version() Version {
	return g.version
}

// Node returns the node id used for v1 and v6 UUIDs.
func (g *UUIDGenerator) Node() NodeID {
	return g.node
}

func (g *UUIDGenerator) now() Timestamp {
	if g.timestamp != nil {
		return *g.timestamp
	}
	return TimestampOf(time.Now())
}

// New returns the next UUID.
func (g *UUIDGenerator) New() (UUID, error) {
	switch g.version {
	case VersionTimeBased:
		return NewV1(g.now(), g.node, g.randReader)
	case VersionNameBasedMD5:
		return NewV3(g.namespace, g.name), nil
	case VersionRandom:
		return NewV4(g.randReader)
	case VersionNameBasedSHA1:
		return NewV5(g.namespace, g.name), nil
	case VersionTimeReordered:
		return NewV6(g.now(), g.node, g.randReader)
	case VersionTimeSorted:
		if g.timestamp != nil {
			return g.v7.NewWithTimestamp(*g.timestamp)
		}
		return g.v7.New()
	case VersionCustom:
		return NewV8(g.data), nil
	}
	return Nil, ErrInvalidVersion
}

// Generate implements Generator.
func (g *UUIDGenerator) Generate() (string, error) {
	id, err := g.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Emit calls g.Generate n times and writes every identifier to w on its own
// line. Nothing is written when n is 0.
//
// Argument errors are caught by NewGenerator before Emit runs. A failure
// of the random source mid-stream stops the loop; the complete lines
// generated before it are written and the error is returned.
func Emit(w io.Writer, g Generator, n uint64) error {
	bw := bufio.NewWriter(w)
	for i := uint64(0); i < n; i++ {
		id, err := g.Generate()
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return errors.Join(err, fmt.Errorf("idgen: flush output: %w", ferr))
			}
			return err
		}
		if _, err := bw.WriteString(id); err != nil {
			return fmt.Errorf("idgen: write identifier: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("idgen: write identifier: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("idgen: flush output: %w", err)
	}
	return nil
}
