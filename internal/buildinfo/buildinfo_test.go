package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())

	origVersion, origCommit := buildVersion, buildCommit
	t.Cleanup(func() { buildVersion, buildCommit = origVersion, origCommit })
	buildVersion, buildCommit = "v1.2.3", "abc123"

	buf.Reset()
	PrintBuildData(&buf)
	assert.Contains(t, buf.String(), "Build version: v1.2.3\n")
	assert.Contains(t, buf.String(), "Build date: N/A\n")
	assert.Contains(t, buf.String(), "Build commit: abc123\n")
}
