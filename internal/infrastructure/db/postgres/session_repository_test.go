package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

var sessionColumns = []string{"id", "user_id", "current_refresh_token_hash", "initiated_at", "expires_at", "revoked", "version"}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s := &domain.Session{
		ID:                      "8e2d6c1a-3b7f-4c2d-9f10-0a1b2c3d4e5f",
		UserID:                  "3f1c1f5e-8f0a-4c57-9f57-6f5f2b0d7a10",
		CurrentRefreshTokenHash: "deadbeef",
		InitiatedAt:             now,
		ExpiresAt:               now.Add(48 * time.Hour),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(s.ID, s.UserID, s.CurrentRefreshTokenHash, s.InitiatedAt, s.ExpiresAt, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), s))

	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\$1").
		WithArgs(s.ID).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(s.ID, s.UserID, s.CurrentRefreshTokenHash, s.InitiatedAt, s.ExpiresAt, false, int64(3)))

	got, err := repo.FindByID(context.Background(), s.ID)
	require.NoError(t, err)
	want := *s
	want.Version = 3
	assert.Equal(t, &want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByID_Missing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(sql.ErrNoRows)

	got, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_FindByID_Error(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(boom)

	_, err := repo.FindByID(context.Background(), "s1")
	assert.ErrorIs(t, err, boom)
}

func TestSessionRepository_UpdateRefresh(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec("UPDATE sessions SET current_refresh_token_hash (.+) version = version \\+ 1 (.+) AND NOT revoked").
		WithArgs("s1", "newhash", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateRefresh(context.Background(), "s1", "newhash", expires)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_UpdateRefreshSkipsRevoked(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec("UPDATE sessions SET current_refresh_token_hash (.+) AND NOT revoked").
		WithArgs("s1", "newhash", expires).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateRefresh(context.Background(), "s1", "newhash", expires)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Revoke(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec("UPDATE sessions SET revoked = TRUE, version = version \\+ 1 WHERE id = \\$1 AND NOT revoked").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Revoke(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteStale(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteStale(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
