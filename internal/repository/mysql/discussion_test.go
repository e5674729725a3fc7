package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/ojlab/discussions/domain"
	"github.com/ojlab/discussions/internal/repository/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func discussionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"discussion_id", "problem_id", "identity_id", "content",
		"upvotes", "downvotes", "created_at", "updated_at",
	})
}

func TestDiscussionGetByID(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `Problem_Discussions` WHERE discussion_id = ").
		WillReturnRows(discussionRows().AddRow(5, 7, 11, "any hints?", 3, 1, now, now))

	d, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
	assert.Equal(t, int64(7), d.ProblemID)
	assert.Equal(t, int64(3), d.Upvotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscussionGetByIDNotFound(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `Problem_Discussions`").
		WillReturnRows(discussionRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDiscussionFetchByProblem(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT count\\((.+)\\) FROM `Problem_Discussions` WHERE problem_id = ").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM `Problem_Discussions` WHERE problem_id = (.+) ORDER BY upvotes DESC").
		WillReturnRows(discussionRows().
			AddRow(6, 7, 12, "second", 5, 0, now, now).
			AddRow(5, 7, 11, "first", 2, 0, now, now))

	discussions, total, err := repo.FetchByProblem(context.Background(), 7, domain.DiscussionListParams{
		Page: 1, PageSize: 20, SortBy: "upvotes", Order: "DESC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, discussions, 2)
	assert.Equal(t, int64(6), discussions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An unknown sort key must never reach the ORDER BY clause.
func TestDiscussionFetchByProblemUnknownSortFallsBack(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	mock.ExpectQuery("SELECT count\\((.+)\\) FROM `Problem_Discussions`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM `Problem_Discussions` WHERE problem_id = (.+) ORDER BY created_at DESC").
		WillReturnRows(discussionRows())

	_, _, err := repo.FetchByProblem(context.Background(), 7, domain.DiscussionListParams{
		Page: 1, PageSize: 20, SortBy: "identity_id; DROP TABLE", Order: "DESC",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscussionStore(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	mock.ExpectExec("INSERT INTO `Problem_Discussions`").
		WillReturnResult(sqlmock.NewResult(42, 1))

	d := domain.Discussion{ProblemID: 7, IdentityID: 11, Content: "new thread"}
	require.NoError(t, repo.Store(context.Background(), &d))
	assert.Equal(t, int64(42), d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscussionUpdateVoteCounts(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	mock.ExpectExec("UPDATE `Problem_Discussions` SET (.+) WHERE discussion_id = ").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateVoteCounts(context.Background(), 5, 4, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscussionDelete(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewDiscussionRepository(db)

	mock.ExpectExec("DELETE FROM `Problem_Discussions` WHERE discussion_id = ").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
