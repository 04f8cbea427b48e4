package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace selects one of the well-known name space identifiers of
// RFC 4122 appendix C, used as the hashing salt of v3 and v5 UUIDs.
type Namespace int

const (
	NamespaceDNS Namespace = iota
	NamespaceOID
	NamespaceURL
	NamespaceX500
)

var namespaceNames = [...]string{
	NamespaceDNS:  "dns",
	NamespaceOID:  "oid",
	NamespaceURL:  "url",
	NamespaceX500: "x500",
}

// ParseNamespace maps a case-insensitive token (dns, oid, url, x500) to a Namespace.
func ParseNamespace(s string) (Namespace, error) {
	for ns, name := range namespaceNames {
		if strings.EqualFold(s, name) {
			return Namespace(ns), nil
		}
	}
	return 0, argErrorf("namespace", ErrInvalidFormat,
		"namespace must be one of %s, got %q", strings.Join(namespaceNames[:], ", "), s)
}

func (ns Namespace) String() string {
	if ns < 0 || int(ns) >= len(namespaceNames) {
		return "unknown"
	}
	return namespaceNames[ns]
}

// UUID returns the constant name space identifier.
func (ns Namespace) UUID() UUID {
	switch ns {
	case NamespaceOID:
		return UUID(uuid.NameSpaceOID)
	case NamespaceURL:
		return UUID(uuid.NameSpaceURL)
	case NamespaceX500:
		return UUID(uuid.NameSpaceX500)
	default:
		return UUID(uuid.NameSpaceDNS)
	}
}

// NewV3 returns the name-based UUID built from the MD5 digest of the name
// space identifier followed by name. The result depends only on its inputs.
func NewV3(ns Namespace, name string) UUID {
	return UUID(uuid.NewMD5(uuid.UUID(ns.UUID()), []byte(name)))
}

// NewV5 is NewV3 with SHA-1 in place of MD5.
func NewV5(ns Namespace, name string) UUID {
	return UUID(uuid.NewSHA1(uuid.UUID(ns.UUID()), []byte(name)))
}
