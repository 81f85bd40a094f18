package notification

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// Service is the recipient-facing side of the notification store.
type Service struct {
	notifRepo   domain.NotificationRepository
	userRepo    domain.UserRepository
	commentRepo domain.CommentRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

// NewService will create a new notification service object
func NewService(n domain.NotificationRepository, u domain.UserRepository, c domain.CommentRepository) *Service {
	return &Service{
		notifRepo:   n,
		userRepo:    u,
		commentRepo: c,
	}
}

// List returns the recipient's notifications newest first, with sender and comment attached.
func (s *Service) List(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	res, err := s.notifRepo.FetchByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return []domain.Notification{}, nil
	}
	if err := s.populate(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) MarkRead(ctx context.Context, id, requesterID int64) (domain.Notification, error) {
	n, err := s.owned(ctx, id, requesterID)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.Read {
		return n, nil
	}
	if err := s.notifRepo.MarkRead(ctx, id); err != nil {
		return domain.Notification{}, err
	}
	n.Read = true
	return n, nil
}

func (s *Service) MarkAllRead(ctx context.Context, recipientID int64) error {
	return s.notifRepo.MarkAllRead(ctx, recipientID)
}

func (s *Service) DeleteOne(ctx context.Context, id, requesterID int64) error {
	if _, err := s.owned(ctx, id, requesterID); err != nil {
		return err
	}
	return s.notifRepo.Delete(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context, recipientID int64) (int64, error) {
	return s.notifRepo.DeleteByRecipient(ctx, recipientID)
}

func (s *Service) owned(ctx context.Context, id, requesterID int64) (domain.Notification, error) {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.RecipientID != requesterID {
		return domain.Notification{}, domain.ErrUnauthorized
	}
	return n, nil
}

func (s *Service) populate(ctx context.Context, ns []domain.Notification) error {
	senderIDs := make([]int64, 0, len(ns))
	commentIDs := make([]int64, 0, len(ns))
	seenSender := make(map[int64]bool)
	seenComment := make(map[int64]bool)
	for _, n := range ns {
		if !seenSender[n.SenderID] {
			seenSender[n.SenderID] = true
			senderIDs = append(senderIDs, n.SenderID)
		}
		if n.CommentID != nil && !seenComment[*n.CommentID] {
			seenComment[*n.CommentID] = true
			commentIDs = append(commentIDs, *n.CommentID)
		}
	}

	var (
		users    []domain.User
		comments []*domain.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.userRepo.GetByIDs(gctx, senderIDs)
		return
	})
	if len(commentIDs) > 0 {
		g.Go(func() (err error) {
			comments, err = s.commentRepo.GetByIDs(gctx, commentIDs)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	commentMap := make(map[int64]*domain.Comment, len(comments))
	for _, c := range comments {
		commentMap[c.ID] = c
	}

	// 评论被删除后通知仍保留, Comment 字段为空
	for i := range ns {
		if u, ok := userMap[ns[i].SenderID]; ok {
			ns[i].Sender = &u
		}
		if ns[i].CommentID != nil {
			ns[i].Comment = commentMap[*ns[i].CommentID]
		}
	}
	return nil
}
