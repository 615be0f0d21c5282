package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksModelTracksPendingChecks(t *testing.T) {
	t.Parallel()

	checks := []doctorCheck{{name: "webex"}, {name: "claude"}, {name: "catalog"}}
	m := newChecksModel(checks, nil)
	assert.Contains(t, m.View(), "Checking webex, claude, catalog (0/3 done)")

	next, cmd := m.Update(checkDoneMsg{index: 1})
	assert.Nil(t, cmd)
	m = next.(checksModel)
	assert.Contains(t, m.View(), "Checking webex, catalog (1/3 done)")

	results := []checkResult{{name: "webex", ok: true}}
	next, cmd = m.Update(checksDoneMsg{results: results})
	require.NotNil(t, cmd)
	m = next.(checksModel)
	assert.True(t, m.done)
	assert.Empty(t, m.View())
	assert.Equal(t, results, m.results)
}

func TestRunChecksReturnsResultsInCheckOrder(t *testing.T) {
	t.Parallel()

	checks := []doctorCheck{
		{name: "first", run: func(context.Context) checkResult { return checkResult{name: "first", ok: true} }},
		{name: "second", run: func(context.Context) checkResult { return checkResult{name: "second", detail: "broken"} }},
	}

	var output bytes.Buffer
	results, err := runChecks(context.Background(), &output, checks)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].name)
	assert.True(t, results[0].ok)
	assert.Equal(t, "broken", results[1].detail)
}
