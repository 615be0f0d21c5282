package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.0", ""
	assert.Equal(t, "v1.2.0", String())

	Commit = "abc1234"
	assert.Equal(t, "v1.2.0 (abc1234)", String())
}
