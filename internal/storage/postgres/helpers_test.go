package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_UsesConfiguredDeadline(t *testing.T) {
	t.Cleanup(func() { queryTimeout = defaultQueryTimeout })
	SetQueryTimeout(250 * time.Millisecond)

	before := time.Now()
	ctx, cancel := withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(250*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestWithTimeout_IgnoresNonPositive(t *testing.T) {
	t.Cleanup(func() { queryTimeout = defaultQueryTimeout })
	SetQueryTimeout(0)

	assert.Equal(t, defaultQueryTimeout, queryTimeout)
}

func TestWithTimeout_KeepsCallerDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ctx, cancel2 := withTimeout(parent)
	defer cancel2()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	parentDeadline, _ := parent.Deadline()
	assert.Equal(t, parentDeadline, deadline)
}

func TestSuggestionsQuery_CoversAllSourceFields(t *testing.T) {
	for _, branch := range []string{
		"DISTINCT title AS text, 'title' AS type",
		"DISTINCT company AS text, 'company' AS type",
		"DISTINCT skill AS text, 'skill' AS type",
		"DISTINCT location AS text, 'location' AS type",
	} {
		assert.Contains(t, suggestionsQuery, branch)
	}
	// Only live listings feed the type-ahead.
	assert.Equal(t, 4, strings.Count(suggestionsQuery, "status = 'Published'"))
}
