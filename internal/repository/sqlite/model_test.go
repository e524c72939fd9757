package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestToRecord(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	deadline, err := domain.NewDeadline("pay rent", date)
	require.NoError(t, err)
	todo, err := domain.NewTodo("buy milk")
	require.NoError(t, err)

	record := ToRecord(2, deadline)
	assert.Equal(t, 2, record.Position)
	assert.Equal(t, "D", record.Kind)
	assert.Equal(t, sql.NullString{String: "2024-03-01", Valid: true}, record.DueDate)

	record = ToRecord(1, todo)
	assert.False(t, record.DueDate.Valid)
}

func TestTaskRecord_ToDomain(t *testing.T) {
	tests := []struct {
		name    string
		record  TaskRecord
		render  string
		wantErr bool
	}{
		{
			name:   "todo",
			record: TaskRecord{Position: 1, Kind: "T", Done: true, Description: "buy milk"},
			render: "[X] buy milk",
		},
		{
			name:   "event",
			record: TaskRecord{Position: 1, Kind: "E", Description: "meeting", DueDate: sql.NullString{String: "2024-04-01", Valid: true}},
			render: "[ ] meeting (at: 2024-04-01)",
		},
		{
			name:    "deadline without date",
			record:  TaskRecord{Position: 1, Kind: "D", Description: "pay rent"},
			wantErr: true,
		},
		{
			name:    "bad date",
			record:  TaskRecord{Position: 1, Kind: "D", Description: "pay rent", DueDate: sql.NullString{String: "soon", Valid: true}},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			record:  TaskRecord{Position: 1, Kind: "Q", Description: "what"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := tt.record.ToDomain()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.render, task.Render())
		})
	}
}

// mockRows implements Rows over an in-memory slice
type mockRows struct {
	rows    [][]interface{}
	current int
	scanErr error
	err     error
}

func (m *mockRows) Next() bool {
	if m.current >= len(m.rows) {
		return false
	}
	m.current++
	return true
}

func (m *mockRows) Scan(dest ...interface{}) error {
	if m.scanErr != nil {
		return m.scanErr
	}
	row := m.rows[m.current-1]
	*dest[0].(*int) = row[0].(int)
	*dest[1].(*string) = row[1].(string)
	*dest[2].(*bool) = row[2].(bool)
	*dest[3].(*string) = row[3].(string)
	*dest[4].(*sql.NullString) = row[4].(sql.NullString)
	return nil
}

func (m *mockRows) Err() error {
	return m.err
}

func TestScanTaskRecords(t *testing.T) {
	rows := &mockRows{rows: [][]interface{}{
		{1, "T", false, "buy milk", sql.NullString{}},
		{2, "D", true, "pay rent", sql.NullString{String: "2024-03-01", Valid: true}},
	}}

	records, err := ScanTaskRecords(rows)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "buy milk", records[0].Description)
	assert.True(t, records[1].Done)
	assert.Equal(t, "2024-03-01", records[1].DueDate.String)
}

func TestScanTaskRecords_Errors(t *testing.T) {
	_, err := ScanTaskRecords(&mockRows{rows: [][]interface{}{{}}, scanErr: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")

	_, err = ScanTaskRecords(&mockRows{err: errors.New("rows failed")})
	assert.EqualError(t, err, "rows failed")
}
