package user

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// publishTimeout bounds event delivery once the request context is detached
const publishTimeout = 30 * time.Second

type Service struct {
	userRepo  domain.UserRepository
	publisher domain.EventPublisher
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, p domain.EventPublisher) *Service {
	return &Service{
		userRepo:  u,
		publisher: p,
	}
}

// GetByID returns the user with both follow sets loaded.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	var followers, following []int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		followers, err = s.userRepo.FetchFollowerIDs(gctx, id)
		return
	})
	g.Go(func() (err error) {
		following, err = s.userRepo.FetchFollowingIDs(gctx, id)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.User{}, err
	}
	u.Followers = followers
	u.Following = following
	return u, nil
}

// Follow makes userID follow targetID and returns the follower.
// Following twice is a no-op and notifies only once.
func (s *Service) Follow(ctx context.Context, userID, targetID int64) (domain.User, error) {
	if userID == targetID {
		return domain.User{}, domain.ErrInvalidState
	}
	if err := s.mustExist(ctx, userID, targetID); err != nil {
		return domain.User{}, err
	}

	created, err := s.userRepo.Follow(ctx, userID, targetID)
	if err != nil {
		return domain.User{}, err
	}
	if created {
		s.publish(ctx, domain.Event{
			Type:        domain.EventUserFollowed,
			ActorID:     userID,
			RecipientID: targetID,
		})
	}
	return s.GetByID(ctx, userID)
}

// publish 关注已提交, 请求取消也要把通知送出去
func (s *Service) publish(ctx context.Context, ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logrus.Errorf("failed to deliver %s event: %v", ev.Type, err)
	}
}

// Unfollow never notifies.
func (s *Service) Unfollow(ctx context.Context, userID, targetID int64) (domain.User, error) {
	if err := s.mustExist(ctx, userID, targetID); err != nil {
		return domain.User{}, err
	}
	if _, err := s.userRepo.Unfollow(ctx, userID, targetID); err != nil {
		return domain.User{}, err
	}
	return s.GetByID(ctx, userID)
}

func (s *Service) ListFollowers(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.userRepo.FetchFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.usersInOrder(ctx, ids)
}

func (s *Service) ListFollowing(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.userRepo.FetchFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.usersInOrder(ctx, ids)
}

func (s *Service) mustExist(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// usersInOrder loads ids keeping their order, skipping users that no longer exist.
func (s *Service) usersInOrder(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	res := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}
