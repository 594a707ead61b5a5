package project

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// AllocateID returns a new 24-hex-character identifier unique within
// this graph and registers it immediately, so two allocations in the
// same session can never collide even before the caller inserts the
// new object. Allocation state lives on the graph instance; two
// independently loaded projects never interfere.
func (g *Graph) AllocateID() ObjectID {
	for {
		u := uuid.New()
		id := ObjectID(strings.ToUpper(hex.EncodeToString(u[:12])))
		if g.allocated[id] {
			continue
		}
		g.allocated[id] = true
		return id
	}
}
