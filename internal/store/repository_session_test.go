package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) SessionRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewSessionRepository(storeDB, logger.Nop())
}

func TestSessionRepository_Save_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs("tok-123").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), "tok-123")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs("tok-123").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Save(context.Background(), "tok-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist session token")
}

func TestSessionRepository_Token_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token")).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("tok-123"))

	token, err := repo.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestSessionRepository_Token_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Token(context.Background())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Token_EmptyRowMeansNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token")).
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow(""))

	_, err := repo.Token(context.Background())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_NoRowIsFine(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background()))
}
