package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-realtime-comments/domain"
	mysqlrepo "github.com/Guyuepp/go-realtime-comments/internal/repository/mysql"
)

var (
	commentColumns  = []string{"id", "user_id", "content", "parent_id", "created_at"}
	reactionColumns = []string{"comment_id", "user_id", "kind", "created_at"}
)

func TestCommentStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlrepo.NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comment`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	c := &domain.Comment{AuthorID: 2, Content: faker.Sentence()}
	err := repo.Store(context.TODO(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Empty(t, c.Likes)
	assert.NotNil(t, c.Dislikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentGetByID(t *testing.T) {
	t.Run("with reactions", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)
		now := time.Now()

		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(1, 2, "hello", nil, now))
		mock.ExpectQuery("SELECT \\* FROM `comment_reaction` WHERE comment_id IN \\(\\?\\)").
			WillReturnRows(sqlmock.NewRows(reactionColumns).
				AddRow(1, 3, 1, now).
				AddRow(1, 4, -1, now))

		c, err := repo.GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), c.AuthorID)
		assert.True(t, c.IsTopLevel())
		assert.Equal(t, []int64{3}, c.Likes)
		assert.Equal(t, []int64{4}, c.Dislikes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := repo.GetByID(context.TODO(), 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentFetchRoots(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)
		now := time.Now()

		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE parent_id IS NULL ORDER BY created_at DESC, id DESC LIMIT").
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(5, 1, "newer", nil, now).
				AddRow(4, 2, "older", nil, now.Add(-time.Minute)))
		mock.ExpectQuery("SELECT \\* FROM `comment_reaction` WHERE comment_id IN").
			WillReturnRows(sqlmock.NewRows(reactionColumns).AddRow(4, 1, 1, now))

		res, err := repo.FetchRoots(context.TODO(), "", 10)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(5), res[0].ID)
		assert.Empty(t, res[0].Likes)
		assert.Equal(t, []int64{1}, res[1].Likes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad cursor", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		_, err := repo.FetchRoots(context.TODO(), "%%%", 10)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentFetchReplies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlrepo.NewCommentRepository(db)
	now := time.Now()
	parent := int64(1)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE parent_id IN").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(9, 3, "reply", parent, now))
	mock.ExpectQuery("SELECT \\* FROM `comment_reaction` WHERE comment_id IN").
		WillReturnRows(sqlmock.NewRows(reactionColumns))

	res, err := repo.FetchReplies(context.TODO(), []int64{parent})
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.NotNil(t, res[0].ParentID)
	assert.Equal(t, parent, *res[0].ParentID)

	empty, err := repo.FetchReplies(context.TODO(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentToggleReaction(t *testing.T) {
	const (
		lockQuery     = "SELECT \\* FROM `comment` WHERE id = \\?.*FOR UPDATE"
		reactionQuery = "SELECT \\* FROM `comment_reaction` WHERE comment_id = \\? AND user_id = \\?"
	)

	t.Run("add", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(1, 2, "c", nil, time.Now()))
		mock.ExpectQuery(reactionQuery).WillReturnRows(sqlmock.NewRows(reactionColumns))
		mock.ExpectExec("INSERT INTO `comment_reaction`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		change, err := repo.ToggleReaction(context.TODO(), 1, 5, domain.ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, domain.ReactionChange{AuthorID: 2, Added: true}, change)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same kind cancels", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(1, 2, "c", nil, time.Now()))
		mock.ExpectQuery(reactionQuery).
			WillReturnRows(sqlmock.NewRows(reactionColumns).AddRow(1, 5, 1, time.Now()))
		mock.ExpectExec("DELETE FROM `comment_reaction`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		change, err := repo.ToggleReaction(context.TODO(), 1, 5, domain.ReactionLike)
		require.NoError(t, err)
		assert.False(t, change.Added)
		assert.False(t, change.Replaced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("opposite kind replaces", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(1, 2, "c", nil, time.Now()))
		mock.ExpectQuery(reactionQuery).
			WillReturnRows(sqlmock.NewRows(reactionColumns).AddRow(1, 5, -1, time.Now()))
		mock.ExpectExec("INSERT INTO `comment_reaction`.*ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		change, err := repo.ToggleReaction(context.TODO(), 1, 5, domain.ReactionLike)
		require.NoError(t, err)
		assert.True(t, change.Added)
		assert.True(t, change.Replaced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnRows(sqlmock.NewRows(commentColumns))
		mock.ExpectRollback()

		_, err := repo.ToggleReaction(context.TODO(), 1, 5, domain.ReactionDislike)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("with replies", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT `id` FROM `comment` WHERE parent_id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(3))
		mock.ExpectExec("DELETE FROM `comment_reaction` WHERE comment_id IN").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec("DELETE FROM `comment` WHERE id IN").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		n, err := repo.Delete(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlrepo.NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT `id` FROM `comment` WHERE parent_id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec("DELETE FROM `comment_reaction`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM `comment`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Delete(context.TODO(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
