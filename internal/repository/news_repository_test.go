package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

func newsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "content", "excerpt", "author", "published_at", "is_published", "created_at", "updated_at"})
}

func TestNewsRepositoryListPublishedFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	rows := newsRows().
		AddRow(1, "Open house", "Details", nil, "Admin", time.Now(), true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM news_articles WHERE is_published = TRUE ORDER BY published_at DESC")).
		WillReturnRows(rows)

	list, err := repo.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepositoryCreateDefaultsPublishedAt(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	mock.ExpectQuery("INSERT INTO news_articles").
		WithArgs("Open house", "Details", nil, "Admin", sqlmock.AnyArg(), false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	article := &models.NewsArticle{Title: "Open house", Content: "Details", Author: "Admin"}
	require.NoError(t, repo.Create(context.Background(), article))
	assert.Equal(t, int64(9), article.ID)
	assert.False(t, article.PublishedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepositoryUpdateClearsExcerpt(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	rows := newsRows().
		AddRow(9, "Open house", "Details", nil, "Admin", time.Now(), true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news_articles SET excerpt = $1, is_published = $2, updated_at = $3 WHERE id = $4 RETURNING")).
		WithArgs(nil, true, sqlmock.AnyArg(), int64(9)).
		WillReturnRows(rows)

	p := models.NewsArticlePatch{
		Excerpt:     patch.Null[string](),
		IsPublished: patch.Set(true),
	}
	article, err := repo.Update(context.Background(), 9, p)
	require.NoError(t, err)
	assert.Nil(t, article.Excerpt)
	assert.True(t, article.IsPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepositoryDeleteMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNewsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news_articles WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
