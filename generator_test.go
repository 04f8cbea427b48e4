package idgen

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_AllVersions(t *testing.T) {
	tests := []struct {
		name string
		req  UUIDRequest
	}{
		{"v1", UUIDRequest{Version: VersionTimeBased}},
		{"v3", UUIDRequest{Version: VersionNameBasedMD5, Namespace: ptr(NamespaceDNS), Name: ptr("example")}},
		{"v4", UUIDRequest{Version: VersionRandom}},
		{"v5", UUIDRequest{Version: VersionNameBasedSHA1, Namespace: ptr(NamespaceURL), Name: ptr("example")}},
		{"v6", UUIDRequest{Version: VersionTimeReordered}},
		{"v7", UUIDRequest{Version: VersionTimeSorted}},
		{"v8", UUIDRequest{Version: VersionCustom, Data: ptr([16]byte{0xca, 0xfe})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.req)
			require.NoError(t, err)

			s, err := g.Generate()
			require.NoError(t, err)
			assertCanonical(t, s, tt.req.Version)
		})
	}
}

func TestUUIDGenerator_RandomVersionsDiffer(t *testing.T) {
	for _, v := range []Version{VersionTimeBased, VersionRandom, VersionTimeReordered, VersionTimeSorted} {
		g, err := NewGenerator(UUIDRequest{Version: v})
		require.NoError(t, err)

		a, err := g.Generate()
		require.NoError(t, err)
		b, err := g.Generate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b, "version %d", v)
	}
}

func TestUUIDGenerator_FixedTimestamp(t *testing.T) {
	ts := Timestamp{Seconds: 1645557742}

	for _, v := range []Version{VersionTimeBased, VersionTimeReordered} {
		g, err := NewGenerator(UUIDRequest{Version: v, Timestamp: &ts, NodeID: &rfcExampleNode})
		require.NoError(t, err)

		a, err := g.(*UUIDGenerator).New()
		require.NoError(t, err)
		b, err := g.(*UUIDGenerator).New()
		require.NoError(t, err)

		assert.Equal(t, a.gregorianTicks(), b.gregorianTicks(), "version %d", v)
		assert.Equal(t, rfcExampleNode, a.NodeID())
		assert.Equal(t, int64(1645557742000), a.Timestamp())
	}

	g, err := NewGenerator(UUIDRequest{Version: VersionTimeSorted, Timestamp: &ts})
	require.NoError(t, err)
	seen := make(map[UUID]bool)
	for i := 0; i < 10; i++ {
		id, err := g.(*UUIDGenerator).New()
		require.NoError(t, err)
		assert.Equal(t, int64(1645557742000), id.Timestamp())
		seen[id] = true
	}
	assert.Len(t, seen, 10)
}

func TestUUIDGenerator_PseudoMACFixedPerGenerator(t *testing.T) {
	g, err := NewGenerator(UUIDRequest{Version: VersionTimeBased})
	require.NoError(t, err)
	ug := g.(*UUIDGenerator)

	assert.True(t, ug.Node().IsLocal())
	assert.False(t, ug.Node().IsMulticast())

	for i := 0; i < 5; i++ {
		id, err := ug.New()
		require.NoError(t, err)
		assert.Equal(t, ug.Node(), id.NodeID())
	}
}

func TestUUIDGenerator_NameBasedStable(t *testing.T) {
	g, err := NewGenerator(UUIDRequest{Version: VersionNameBasedSHA1, Namespace: ptr(NamespaceDNS), Name: ptr("www.example.com")})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, g, 3))
	assert.Equal(t, strings.Repeat("2ed6657d-e927-568b-95e1-2665a8aea6a2\n", 3), buf.String())
}

func TestUUIDGenerator_BrokenReader(t *testing.T) {
	_, err := NewGeneratorWithReader(UUIDRequest{Version: VersionTimeBased}, &brokenReader{})
	assert.Error(t, err)

	g, err := NewGeneratorWithReader(UUIDRequest{Version: VersionRandom}, &brokenReader{})
	require.NoError(t, err)
	_, err = g.Generate()
	assert.Error(t, err)
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		n    uint64
	}{
		{"zero", UUIDRequest{Version: VersionRandom}, 0},
		{"one uuid", UUIDRequest{Version: VersionRandom}, 1},
		{"many uuids", UUIDRequest{Version: VersionTimeSorted}, 500},
		{"ulids", ULIDRequest{}, 10},
		{"object ids", ObjectIDRequest{}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGeneratorWithReader(tt.req, rand.Reader)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Emit(&buf, g, tt.n))

			if tt.n == 0 {
				assert.Empty(t, buf.String())
				return
			}
			out := buf.String()
			require.True(t, strings.HasSuffix(out, "\n"))
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			assert.Len(t, lines, int(tt.n))

			seen := make(map[string]bool, len(lines))
			for _, line := range lines {
				assert.NotEmpty(t, line)
				seen[line] = true
			}
			assert.Len(t, seen, len(lines))
		})
	}
}

type failingGenerator struct {
	after int
	calls int
}

var errGenerate = errors.New("generate failed")

func (g *failingGenerator) Generate() (string, error) {
	g.calls++
	if g.calls > g.after {
		return "", errGenerate
	}
	return "id", nil
}

func TestEmit_GeneratorError(t *testing.T) {
	tests := []struct {
		name  string
		after int
		want  string
	}{
		{"first call", 0, ""},
		{"after two", 2, "id\nid\n"},
		{"past the buffer", 2000, strings.Repeat("id\n", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Emit(&buf, &failingGenerator{after: tt.after}, 5000)
			assert.ErrorIs(t, err, errGenerate)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmit_WriteError(t *testing.T) {
	g, err := NewGenerator(ObjectIDRequest{})
	require.NoError(t, err)

	err = Emit(failingWriter{}, g, 1)
	assert.ErrorContains(t, err, "disk full")
}
