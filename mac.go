package idgen

import (
	"fmt"
	"io"
	"net"
)

// NodeID is the 48-bit node field of v1 and v6 UUIDs, normally an EUI-48
// MAC address.
type NodeID [6]byte

func (n NodeID) String() string {
	return net.HardwareAddr(n[:]).String()
}

// IsLocal reports whether the locally administered bit is set.
func (n NodeID) IsLocal() bool {
	return n[0]&0x02 != 0
}

// IsMulticast reports whether the group bit is set.
func (n NodeID) IsMulticast() bool {
	return n[0]&0x01 != 0
}

// NewPseudoMAC returns a random node id with the locally administered bit
// set and the multicast bit cleared, so it can never collide with a
// hardware address or name a group.
func NewPseudoMAC(r io.Reader) (NodeID, error) {
	var node NodeID
	if _, err := io.ReadFull(r, node[:]); err != nil {
		return node, fmt.Errorf("idgen: read pseudo MAC: %w", err)
	}
	node[0] = (node[0] | 0x02) &^ 0x01
	return node, nil
}
