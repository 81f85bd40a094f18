package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/domain/mocks"
	"github.com/Guyuepp/go-realtime-comments/internal/usecase/user"
)

func newUser(id int64) domain.User {
	return domain.User{ID: id, Name: faker.Name(), Username: faker.Username()}
}

func TestFollow(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)

		_, err := svc.Follow(context.TODO(), 1, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("missing target", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)

		repo.On("GetByID", mock.Anything, int64(1)).Return(newUser(1), nil)
		repo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{}, domain.ErrNotFound)

		_, err := svc.Follow(context.TODO(), 1, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("new edge notifies", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)

		repo.On("GetByID", mock.Anything, int64(1)).Return(newUser(1), nil)
		repo.On("GetByID", mock.Anything, int64(2)).Return(newUser(2), nil)
		repo.On("Follow", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
		repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil)
		repo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2}, nil)
		pub.On("Publish", mock.Anything, domain.Event{
			Type:        domain.EventUserFollowed,
			ActorID:     1,
			RecipientID: 2,
		}).Return(nil).Once()

		u, err := svc.Follow(context.TODO(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, u.Following)
		assert.Empty(t, u.Followers)
	})

	t.Run("existing edge is silent", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)

		repo.On("GetByID", mock.Anything, int64(1)).Return(newUser(1), nil)
		repo.On("GetByID", mock.Anything, int64(2)).Return(newUser(2), nil)
		repo.On("Follow", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
		repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil)
		repo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2}, nil)

		u, err := svc.Follow(context.TODO(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, u.Following)
	})

	t.Run("delivery failure does not fail the follow", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)

		repo.On("GetByID", mock.Anything, mock.Anything).Return(newUser(1), nil)
		repo.On("Follow", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
		repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil)
		repo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2}, nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.Follow(context.TODO(), 1, 2)
		assert.NoError(t, err)
	})

	t.Run("request cancelled after commit still notifies", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		pub := mocks.NewEventPublisher(t)
		svc := user.NewService(repo, pub)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo.On("GetByID", mock.Anything, mock.Anything).Return(newUser(1), nil)
		repo.On("Follow", mock.Anything, int64(1), int64(2)).
			Run(func(mock.Arguments) { cancel() }).
			Return(true, nil).Once()
		repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil).Maybe()
		repo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{2}, nil).Maybe()
		pub.On("Publish", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.MatchedBy(func(ev domain.Event) bool {
			return ev.Type == domain.EventUserFollowed && ev.RecipientID == 2
		})).Return(nil).Once()

		_, _ = svc.Follow(ctx, 1, 2)
	})
}

func TestUnfollow(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	pub := mocks.NewEventPublisher(t)
	svc := user.NewService(repo, pub)

	repo.On("GetByID", mock.Anything, int64(1)).Return(newUser(1), nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(newUser(2), nil)
	repo.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
	repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{}, nil)
	repo.On("FetchFollowingIDs", mock.Anything, int64(1)).Return([]int64{}, nil)

	u, err := svc.Unfollow(context.TODO(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, u.Following)
}

func TestListFollowersKeepsOrder(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := user.NewService(repo, mocks.NewEventPublisher(t))

	repo.On("GetByID", mock.Anything, int64(1)).Return(newUser(1), nil)
	repo.On("FetchFollowerIDs", mock.Anything, int64(1)).Return([]int64{4, 2, 3}, nil)
	repo.On("GetByIDs", mock.Anything, []int64{4, 2, 3}).
		Return([]domain.User{newUser(2), newUser(3), newUser(4)}, nil)

	users, err := svc.ListFollowers(context.TODO(), 1)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, int64(4), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
	assert.Equal(t, int64(3), users[2].ID)
}

func TestListFollowingUnknownUser(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := user.NewService(repo, mocks.NewEventPublisher(t))

	repo.On("GetByID", mock.Anything, int64(9)).Return(domain.User{}, domain.ErrNotFound)

	_, err := svc.ListFollowing(context.TODO(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
