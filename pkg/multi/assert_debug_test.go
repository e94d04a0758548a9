//go:build archdb_debug

package multi

import (
	"testing"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/stretchr/testify/assert"
)

func TestProvidersInvariantPanics(t *testing.T) {
	p := &Providers[*desc.EagerQuerier]{
		target:  "sh",
		pending: []pendingGroup[*desc.EagerQuerier]{{name: "bash", group: newGroup[*desc.EagerQuerier]()}},
	}

	assert.PanicsWithValue(t, "invariant violated: current group was emptied before the pending groups", func() {
		p.Next()
	})
}
