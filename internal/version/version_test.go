package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v1.2.3"
	assert.Contains(t, Info(), "workbench v1.2.3")
	assert.Contains(t, Info(), "commit: "+Commit)
}
