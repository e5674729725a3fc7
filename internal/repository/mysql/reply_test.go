package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/ojlab/discussions/internal/repository/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

func TestReplyFetchByDiscussion(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewReplyRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"reply_id", "discussion_id", "identity_id", "is_anonymous", "content", "created_at", "updated_at",
	}).
		AddRow(9, 5, 12, false, "me too", now, now).
		AddRow(10, 5, 13, true, "use a heap", now, now)
	mock.ExpectQuery("SELECT (.+) FROM `Problem_Discussion_Replies` WHERE discussion_id = (.+) ORDER BY created_at ASC").
		WillReturnRows(rows)

	replies, err := repo.FetchByDiscussion(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, int64(9), replies[0].ID)
	assert.True(t, replies[1].IsAnonymous)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyCountByDiscussion(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysql.NewReplyRepository(db)

	mock.ExpectQuery("SELECT count\\((.+)\\) FROM `Problem_Discussion_Replies` WHERE discussion_id = ").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByDiscussion(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
