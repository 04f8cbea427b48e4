package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidate(t *testing.T) {
	ts := ptr(Timestamp{Seconds: 1645557742})
	dns := ptr(NamespaceDNS)
	name := ptr("www.example.com")
	data := ptr([16]byte{0x01})

	tests := []struct {
		name    string
		req     Request
		wantErr error
		wantArg string
	}{
		{"v1", UUIDRequest{Version: 1}, nil, ""},
		{"v1 with timestamp", UUIDRequest{Version: 1, Timestamp: ts}, nil, ""},
		{"v1 with node", UUIDRequest{Version: 1, NodeID: ptr(NodeID{0x02})}, nil, ""},
		{"v3", UUIDRequest{Version: 3, Namespace: dns, Name: name}, nil, ""},
		{"v3 missing namespace", UUIDRequest{Version: 3, Name: name}, ErrMissingRequiredArgument, "namespace"},
		{"v3 missing name", UUIDRequest{Version: 3, Namespace: dns}, ErrMissingRequiredArgument, "name"},
		{"v3 missing both", UUIDRequest{Version: 3}, ErrMissingRequiredArgument, "namespace"},
		{"v3 with timestamp", UUIDRequest{Version: 3, Timestamp: ts, Namespace: dns, Name: name}, ErrIncompatibleArguments, "timestamp"},
		{"v4", UUIDRequest{Version: 4}, nil, ""},
		{"v4 with timestamp", UUIDRequest{Version: 4, Timestamp: ts}, ErrIncompatibleArguments, "timestamp"},
		{"v5", UUIDRequest{Version: 5, Namespace: dns, Name: ptr("")}, nil, ""},
		{"v5 missing name", UUIDRequest{Version: 5, Namespace: dns}, ErrMissingRequiredArgument, "name"},
		{"v6 with timestamp", UUIDRequest{Version: 6, Timestamp: ts}, nil, ""},
		{"v7", UUIDRequest{Version: 7}, nil, ""},
		{"v7 with timestamp", UUIDRequest{Version: 7, Timestamp: ts}, nil, ""},
		{"v8", UUIDRequest{Version: 8, Data: data}, nil, ""},
		{"v8 missing data", UUIDRequest{Version: 8}, ErrMissingRequiredArgument, "data"},
		{"v8 with timestamp", UUIDRequest{Version: 8, Timestamp: ts, Data: data}, ErrIncompatibleArguments, "timestamp"},
		{"v0", UUIDRequest{Version: 0}, ErrInvalidVersion, "version"},
		{"v2", UUIDRequest{Version: 2}, ErrInvalidVersion, "version"},
		{"v9", UUIDRequest{Version: 9}, ErrInvalidVersion, "version"},
		{"ulid", ULIDRequest{}, nil, ""},
		{"ulid max", ULIDRequest{Timestamp: ptr(uint64(1<<48 - 1))}, nil, ""},
		{"ulid above max", ULIDRequest{Timestamp: ptr(uint64(1 << 48))}, ErrOutOfRange, "timestamp"},
		{"oid", ObjectIDRequest{Timestamp: ptr(uint32(0))}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			var argErr *ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantArg, argErr.Arg)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	err := Validate(UUIDRequest{Version: 3})
	assert.EqualError(t, err, "invalid argument --namespace: namespace is required for UUID version 3")

	err = Validate(UUIDRequest{Version: 4, Timestamp: &Timestamp{}})
	assert.EqualError(t, err, "invalid argument --timestamp: timestamp cannot be used with UUID version 4, only with versions 1, 6 and 7")
}

func TestRequest_Kind(t *testing.T) {
	assert.Equal(t, "uuid", UUIDRequest{}.Kind())
	assert.Equal(t, "ulid", ULIDRequest{}.Kind())
	assert.Equal(t, "oid", ObjectIDRequest{}.Kind())
}

type unknownRequest struct{}

func (unknownRequest) Kind() string { return "snowflake" }

func TestNewGenerator_Types(t *testing.T) {
	g, err := NewGenerator(UUIDRequest{Version: 4})
	require.NoError(t, err)
	assert.IsType(t, &UUIDGenerator{}, g)

	g, err = NewGenerator(ULIDRequest{})
	require.NoError(t, err)
	assert.IsType(t, &ULIDGenerator{}, g)

	g, err = NewGenerator(ObjectIDRequest{})
	require.NoError(t, err)
	assert.IsType(t, &ObjectIDGenerator{}, g)
}

func TestNewGenerator_Rejects(t *testing.T) {
	_, err := NewGenerator(nil)
	assert.ErrorIs(t, err, errNilRequest)

	_, err = NewGenerator(unknownRequest{})
	assert.ErrorContains(t, err, "unsupported request type")

	_, err = NewGenerator(UUIDRequest{Version: 5})
	assert.ErrorIs(t, err, ErrMissingRequiredArgument)
}
