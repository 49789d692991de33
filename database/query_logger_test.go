package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryLoggerNewestFirst(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	assert.Len(t, queries, 2)
	assert.Equal(t, "SELECT 2", queries[0].SQL)
	assert.Equal(t, "SELECT 1", queries[1].SQL)
}

func TestQueryLoggerCapsAtMaxLogs(t *testing.T) {
	ql := NewQueryLogger(3)

	for i := 0; i < 5; i++ {
		ql.LogQuery("SELECT", time.Millisecond, 1, nil)
	}

	assert.Len(t, ql.GetQueries(), 3)
}

func TestQueryLoggerRecordsError(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("INSERT INTO foods", time.Millisecond, 0, errors.New("violates foreign key constraint"))

	queries := ql.GetQueries()
	assert.Equal(t, "violates foreign key constraint", queries[0].Error)
}

func TestQueryLoggerGetRecentQueries(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 1, nil)

	recent := ql.GetRecentQueries(2)
	assert.Len(t, recent, 2)
	assert.Equal(t, "SELECT 3", recent[0].SQL)

	// Asking for more than we have returns everything
	assert.Len(t, ql.GetRecentQueries(99), 3)
}

func TestQueryLoggerClear(t *testing.T) {
	ql := NewQueryLogger(10)
	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)

	ql.Clear()

	assert.Empty(t, ql.GetQueries())
}
