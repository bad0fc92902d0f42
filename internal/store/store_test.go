package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(schema).WillReturnResult(sqlmock.NewResult(0, 0))
	s, err := NewWithDB(db)
	require.NoError(t, err)
	return s, mock
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO calculations (id, created_at, profile, result, verdict) VALUES (?, ?, ?, ?, ?)`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), `{"age":35}`, `{"monthlyPension":"3400"}`, `{"status":"ok"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec, err := s.Save(context.Background(),
		[]byte(`{"age":35}`), []byte(`{"monthlyPension":"3400"}`), []byte(`{"status":"ok"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReturnsNewestFirst(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "created_at", "profile", "result", "verdict"}).
		AddRow("id-2", now, `{}`, `{}`, `{}`).
		AddRow("id-1", now.Add(-time.Hour), `{}`, `{}`, `{}`)

	mock.ExpectQuery(`SELECT id, created_at, profile, result, verdict FROM calculations ORDER BY created_at DESC LIMIT ? OFFSET ?`).
		WithArgs(20, 0).
		WillReturnRows(rows)

	records, err := s.List(context.Background(), 0, -1)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, "id-1", records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnknownIDReturnsErrNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, created_at, profile, result, verdict FROM calculations WHERE id = ?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "profile", "result", "verdict"}))

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsStoredRecord(t *testing.T) {
	s, mock := newMockStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, created_at, profile, result, verdict FROM calculations WHERE id = ?`).
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "profile", "result", "verdict"}).
			AddRow("id-1", now, `{"age":40}`, `{"monthlyPension":"2100"}`, `{"status":"warning"}`))

	rec, err := s.Get(context.Background(), "id-1")
	require.NoError(t, err)

	assert.Equal(t, "id-1", rec.ID)
	assert.JSONEq(t, `{"age":40}`, string(rec.Profile))
	assert.JSONEq(t, `{"status":"warning"}`, string(rec.Verdict))
	assert.NoError(t, mock.ExpectationsWereMet())
}
