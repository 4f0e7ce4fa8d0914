package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestProgramRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "duration_years", "requirements", "created_at", "updated_at"}).
		AddRow(1, "Science", "Natural sciences track", 3, nil, time.Now(), time.Now()).
		AddRow(2, "Social", "Social studies track", 3, "Entrance interview", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, duration_years, requirements, created_at, updated_at FROM programs ORDER BY id")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Nil(t, list[0].Requirements)
	require.NotNil(t, list[1].Requirements)
	assert.Equal(t, "Entrance interview", *list[1].Requirements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectQuery("INSERT INTO programs").
		WithArgs("Science", "Natural sciences track", 3, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	program := &models.Program{Name: "Science", Description: "Natural sciences track", DurationYears: 3}
	require.NoError(t, repo.Create(context.Background(), program))
	assert.Equal(t, int64(7), program.ID)
	assert.False(t, program.CreatedAt.IsZero())
	assert.Equal(t, program.CreatedAt, program.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryUpdateBuildsSetClause(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "duration_years", "requirements", "created_at", "updated_at"}).
		AddRow(5, "Science", "Updated description", 3, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE programs SET description = $1, requirements = $2, updated_at = $3 WHERE id = $4 RETURNING")).
		WithArgs("Updated description", nil, sqlmock.AnyArg(), int64(5)).
		WillReturnRows(rows)

	p := models.ProgramPatch{
		Description:  patch.Set("Updated description"),
		Requirements: patch.Null[string](),
	}
	program, err := repo.Update(context.Background(), 5, p)
	require.NoError(t, err)
	assert.Equal(t, "Updated description", program.Description)
	assert.Nil(t, program.Requirements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectQuery("UPDATE programs SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), 999, models.ProgramPatch{Name: patch.Set("X")})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programs WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programs WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
