package comment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/repository"
)

const (
	bloomInitBatch = 1000
	// publishTimeout bounds event delivery once the request context is detached
	publishTimeout = 30 * time.Second
)

type service struct {
	commentRepo domain.CommentRepository
	bloomRepo   domain.BloomRepository
	userRepo    domain.UserRepository
	publisher   domain.EventPublisher
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, bloomRepo domain.BloomRepository, userRepo domain.UserRepository, publisher domain.EventPublisher) *service {
	return &service{
		commentRepo: commentRepo,
		bloomRepo:   bloomRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// mustExists 布隆过滤器判定一定不存在时直接返回 ErrNotFound, 过滤器故障时放行
func (s *service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter unavailable: %v", err)
		return nil
	}
	if !exists {
		logrus.Warnf("bloom filter says comment %d does not exist", id)
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, authorID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrBadParamInput
	}

	c := &domain.Comment{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.store(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.Event{
		Type:    domain.EventCommentCreated,
		ActorID: authorID,
		Comment: c,
	})
	return c, nil
}

func (s *service) Reply(ctx context.Context, authorID, parentID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrBadParamInput
	}
	if err := s.mustExists(ctx, parentID); err != nil {
		return nil, err
	}
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	c := &domain.Comment{
		AuthorID: authorID,
		Content:  content,
		ParentID: &parent.ID,
	}
	if err := s.store(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.Event{
		Type:        domain.EventReplyCreated,
		ActorID:     authorID,
		RecipientID: parent.AuthorID,
		Comment:     c,
	})
	return c, nil
}

func (s *service) ToggleLike(ctx context.Context, commentID, userID int64) (*domain.Comment, error) {
	return s.toggle(ctx, commentID, userID, domain.ReactionLike)
}

func (s *service) ToggleDislike(ctx context.Context, commentID, userID int64) (*domain.Comment, error) {
	return s.toggle(ctx, commentID, userID, domain.ReactionDislike)
}

func (s *service) toggle(ctx context.Context, commentID, userID int64, kind domain.ReactionKind) (*domain.Comment, error) {
	if err := s.mustExists(ctx, commentID); err != nil {
		return nil, err
	}
	change, err := s.commentRepo.ToggleReaction(ctx, commentID, userID, kind)
	if err != nil {
		return nil, err
	}

	updated, reacted := domain.EventLikeUpdated, domain.EventCommentLiked
	if kind == domain.ReactionDislike {
		updated, reacted = domain.EventDislikeUpdated, domain.EventCommentDisliked
	}
	// 取消反应或给自己的评论点赞都不通知
	notify := change.Added && userID != change.AuthorID

	c, loadErr := s.commentRepo.GetByID(ctx, commentID)
	if loadErr != nil {
		// 反应已提交但计数读不回来, 只发通知, 不广播过期的计数
		logrus.Errorf("failed to reload comment %d after reaction: %v", commentID, loadErr)
		if notify {
			s.publish(ctx, domain.Event{
				Type:        reacted,
				ActorID:     userID,
				RecipientID: change.AuthorID,
				Comment:     &domain.Comment{ID: commentID, AuthorID: change.AuthorID},
			})
		}
		return nil, loadErr
	}
	if err := s.fillThreads(ctx, []*domain.Comment{c}); err != nil {
		logrus.Warnf("failed to decorate comment %d: %v", commentID, err)
	}

	s.publish(ctx, domain.Event{
		Type:        updated,
		ActorID:     userID,
		RecipientID: change.AuthorID,
		Comment:     c,
	})
	if notify {
		s.publish(ctx, domain.Event{
			Type:        reacted,
			ActorID:     userID,
			RecipientID: change.AuthorID,
			Comment:     c,
		})
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, commentID, requesterID int64) error {
	if err := s.mustExists(ctx, commentID); err != nil {
		return err
	}
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != requesterID {
		return domain.ErrUnauthorized
	}

	n, err := s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	logrus.Debugf("deleted comment %d with %d direct replies", commentID, n-1)
	return nil
}

func (s *service) ListTopLevel(ctx context.Context, cursor string, num int64) ([]*domain.Comment, string, error) {
	repository.PageVerify(&num)
	res, err := s.commentRepo.FetchRoots(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	if err := s.fillThreads(ctx, res); err != nil {
		return nil, "", err
	}

	var next string
	if int64(len(res)) == num {
		last := res[len(res)-1]
		next = repository.EncodeCursor(last.CreatedAt, last.ID)
	}
	return res, next, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if err := s.mustExists(ctx, id); err != nil {
		return nil, err
	}
	return s.load(ctx, id)
}

func (s *service) load(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillThreads(ctx, []*domain.Comment{c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := s.commentRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomInitBatch {
			break
		}
	}
	logrus.Infof("bloom filter loaded with %d comment ids", total)
	return nil
}

func (s *service) store(ctx context.Context, c *domain.Comment) error {
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	if err := s.bloomRepo.Add(ctx, c.ID); err != nil {
		logrus.Warnf("failed to add comment %d to bloom filter: %v", c.ID, err)
	}
	c.Replies = []*domain.Comment{}
	// 评论已落库, 作者信息缺失不影响返回和事件
	if err := s.fillAuthors(ctx, []*domain.Comment{c}); err != nil {
		logrus.Warnf("failed to load author of comment %d: %v", c.ID, err)
	}
	return nil
}

// fillThreads 填充直接子回复以及所有作者信息, 只展开一层
func (s *service) fillThreads(ctx context.Context, roots []*domain.Comment) error {
	rootIDs := make([]int64, len(roots))
	for i, c := range roots {
		rootIDs[i] = c.ID
	}

	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs)
	if err != nil {
		return err
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		replyMap[*r.ParentID] = append(replyMap[*r.ParentID], r)
	}
	for _, c := range roots {
		if list, ok := replyMap[c.ID]; ok {
			c.Replies = list
		} else {
			c.Replies = []*domain.Comment{}
		}
	}

	all := make([]*domain.Comment, 0, len(roots)+len(replies))
	all = append(all, roots...)
	all = append(all, replies...)
	return s.fillAuthors(ctx, all)
}

// fillAuthors 批量填充作者信息, 作者不存在时保持为空
func (s *service) fillAuthors(ctx context.Context, comments []*domain.Comment) error {
	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	for _, c := range comments {
		if u, ok := userMap[c.AuthorID]; ok {
			c.Author = &u
		}
	}
	return nil
}

// publish 变更已提交, 订阅者的失败只记录不回滚.
// 请求取消或超时不能打断投递, 所以脱离请求的 ctx
func (s *service) publish(ctx context.Context, ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logrus.Errorf("failed to deliver %s event: %v", ev.Type, err)
	}
}
