package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	migrateDatabase "github.com/golang-migrate/migrate/v4/database"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/pkg/database"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Up() error {
	return m.Called().Error(0)
}

func (m *mockMigrator) Steps(n int) error {
	return m.Called(n).Error(0)
}

func (m *mockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *mockMigrator) Force(version int) error {
	return m.Called(version).Error(0)
}

func TestRun_Up(t *testing.T) {
	m := new(mockMigrator)
	m.On("Up").Return(migrate.ErrNoChange)
	m.On("Version").Return(uint(2), false, nil)
	var out bytes.Buffer

	err := run([]string{"up"}, m, &out)

	require.NoError(t, err)
	assert.Equal(t, "version: 2 dirty: false\n", out.String())
	m.AssertExpectations(t)
}

func TestRun_DownRollsBackOneStep(t *testing.T) {
	m := new(mockMigrator)
	m.On("Steps", -1).Return(nil)
	m.On("Version").Return(uint(0), false, migrate.ErrNilVersion)
	var out bytes.Buffer

	require.NoError(t, run([]string{"down"}, m, &out))
	assert.Equal(t, "version: none\n", out.String())
}

func TestRun_Force(t *testing.T) {
	m := new(mockMigrator)
	m.On("Force", 1).Return(nil)
	m.On("Version").Return(uint(1), false, nil)
	var out bytes.Buffer

	require.NoError(t, run([]string{"force", "1"}, m, &out))
	m.AssertExpectations(t)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"sideways"}},
		{name: "force without version", args: []string{"force"}},
		{name: "force with bad version", args: []string{"force", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockMigrator)
			assert.Error(t, run(tt.args, m, &bytes.Buffer{}))
			m.AssertNotCalled(t, "Version")
		})
	}
}

func TestRun_UpFailure(t *testing.T) {
	m := new(mockMigrator)
	boom := errors.New("dirty database version 2")
	m.On("Up").Return(boom)

	err := run([]string{"up"}, m, &bytes.Buffer{})

	assert.ErrorIs(t, err, boom)
}

func TestRun_UpFailureKeepsSQLState(t *testing.T) {
	m := new(mockMigrator)
	m.On("Up").Return(migrateDatabase.Error{
		OrigErr: &pq.Error{Code: "42601"},
		Err:     "migration failed",
		Query:   []byte("CREATE TABLE"),
	})

	err := run([]string{"up"}, m, &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, "42601", database.SQLState(err))
}
