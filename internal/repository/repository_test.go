package repository

import (
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"burritoapi/internal/db"
)

// containsMatcher matches when the executed SQL contains the expectation and
// records every statement so tests can assert on what was not sent.
type containsMatcher struct {
	mu   sync.Mutex
	seen []string
}

func (m *containsMatcher) Match(expectedSQL, actualSQL string) error {
	m.mu.Lock()
	m.seen = append(m.seen, actualSQL)
	m.mu.Unlock()
	if !strings.Contains(actualSQL, expectedSQL) {
		return &mismatchError{expected: expectedSQL, actual: actualSQL}
	}
	return nil
}

func (m *containsMatcher) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.seen) == 0 {
		return ""
	}
	return m.seen[len(m.seen)-1]
}

type mismatchError struct{ expected, actual string }

func (e *mismatchError) Error() string {
	return "sql " + e.actual + " does not contain " + e.expected
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *containsMatcher) {
	t.Helper()

	matcher := &containsMatcher{}
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(matcher.Match)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := db.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}))
	require.NoError(t, err)

	return gdb, mock, matcher
}
