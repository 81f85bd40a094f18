package comment_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// memComments is an in-memory domain.CommentRepository.
type memComments struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]domain.Comment
	reactions map[int64]map[int64]domain.ReactionKind
}

func newMemComments() *memComments {
	return &memComments{
		rows:      make(map[int64]domain.Comment),
		reactions: make(map[int64]map[int64]domain.ReactionKind),
	}
}

func (m *memComments) snapshot(id int64) *domain.Comment {
	c := m.rows[id]
	c.Likes, c.Dislikes = []int64{}, []int64{}
	users := make([]int64, 0, len(m.reactions[id]))
	for u := range m.reactions[id] {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	for _, u := range users {
		switch m.reactions[id][u] {
		case domain.ReactionLike:
			c.Likes = append(c.Likes, u)
		case domain.ReactionDislike:
			c.Dislikes = append(c.Dislikes, u)
		}
	}
	return &c
}

func (m *memComments) Store(_ context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = epoch.Add(time.Duration(c.ID) * time.Second)
	c.Likes, c.Dislikes = []int64{}, []int64{}
	row := *c
	row.Author, row.Replies = nil, nil
	m.rows[c.ID] = row
	return nil
}

func (m *memComments) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return nil, domain.ErrNotFound
	}
	return m.snapshot(id), nil
}

func (m *memComments) GetByIDs(_ context.Context, ids []int64) ([]*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := []*domain.Comment{}
	for _, id := range ids {
		if c, ok := m.rows[id]; ok {
			res = append(res, &c)
		}
	}
	return res, nil
}

func (m *memComments) FetchRoots(_ context.Context, _ string, limit int64) ([]*domain.Comment, error) {
	return m.filter(func(c domain.Comment) bool { return c.ParentID == nil }, true, limit), nil
}

func (m *memComments) FetchReplies(_ context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	parents := make(map[int64]bool, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = true
	}
	return m.filter(func(c domain.Comment) bool { return c.ParentID != nil && parents[*c.ParentID] }, false, 0), nil
}

func (m *memComments) filter(keep func(domain.Comment) bool, newestFirst bool, limit int64) []*domain.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.rows))
	for id, c := range m.rows {
		if keep(c) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if newestFirst {
			return ids[i] > ids[j]
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	res := make([]*domain.Comment, len(ids))
	for i, id := range ids {
		res[i] = m.snapshot(id)
	}
	return res
}

func (m *memComments) ToggleReaction(_ context.Context, commentID, userID int64, kind domain.ReactionKind) (domain.ReactionChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[commentID]
	if !ok {
		return domain.ReactionChange{}, domain.ErrNotFound
	}
	if m.reactions[commentID] == nil {
		m.reactions[commentID] = make(map[int64]domain.ReactionKind)
	}
	next, change := domain.ToggleReaction(m.reactions[commentID][userID], kind)
	if next == domain.ReactionNone {
		delete(m.reactions[commentID], userID)
	} else {
		m.reactions[commentID][userID] = next
	}
	change.AuthorID = c.AuthorID
	return change, nil
}

func (m *memComments) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, domain.ErrNotFound
	}
	victims := []int64{id}
	for cid, c := range m.rows {
		if c.ParentID != nil && *c.ParentID == id {
			victims = append(victims, cid)
		}
	}
	for _, v := range victims {
		delete(m.rows, v)
		delete(m.reactions, v)
	}
	return int64(len(victims)), nil
}

func (m *memComments) FetchIDs(_ context.Context, cursor, limit int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []int64{}
	for id := range m.rows {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// memNotifications is an in-memory domain.NotificationRepository.
type memNotifications struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.Notification
}

func (m *memNotifications) Store(_ context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	n.ID = m.nextID
	n.CreatedAt = epoch.Add(time.Duration(n.ID) * time.Second)
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memNotifications) StoreBatch(ctx context.Context, ns []*domain.Notification) error {
	for _, n := range ns {
		if err := m.Store(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (m *memNotifications) GetByID(_ context.Context, id int64) (domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, domain.ErrNotFound
}

func (m *memNotifications) FetchByRecipient(_ context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := []domain.Notification{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		n := m.rows[i]
		if n.RecipientID == recipientID && (!unreadOnly || !n.Read) {
			res = append(res, n)
		}
	}
	return res, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memNotifications) MarkAllRead(_ context.Context, recipientID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].RecipientID == recipientID {
			m.rows[i].Read = true
		}
	}
	return nil
}

func (m *memNotifications) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memNotifications) DeleteByRecipient(_ context.Context, recipientID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.rows[:0]
	var n int64
	for _, row := range m.rows {
		if row.RecipientID == recipientID {
			n++
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	return n, nil
}

func (m *memNotifications) ofType(recipientID int64, typ domain.NotificationType) []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Notification
	for _, n := range m.rows {
		if n.RecipientID == recipientID && n.Type == typ {
			res = append(res, n)
		}
	}
	return res
}

// memUsers is an in-memory domain.UserRepository without follow edges.
type memUsers struct {
	users map[int64]domain.User
}

func newMemUsers(users ...domain.User) *memUsers {
	m := &memUsers{users: make(map[int64]domain.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUsers) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	res := []domain.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (m *memUsers) FetchIDs(_ context.Context, cursor, limit int64) ([]int64, error) {
	ids := []int64{}
	for id := range m.users {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *memUsers) Follow(context.Context, int64, int64) (bool, error)   { return true, nil }
func (m *memUsers) Unfollow(context.Context, int64, int64) (bool, error) { return true, nil }

func (m *memUsers) FetchFollowerIDs(context.Context, int64) ([]int64, error) {
	return []int64{}, nil
}

func (m *memUsers) FetchFollowingIDs(context.Context, int64) ([]int64, error) {
	return []int64{}, nil
}

// memBloom never reports false negatives.
type memBloom struct {
	mu  sync.Mutex
	ids map[int64]bool
}

func (b *memBloom) Add(_ context.Context, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ids == nil {
		b.ids = make(map[int64]bool)
	}
	b.ids[id] = true
	return nil
}

func (b *memBloom) Exists(_ context.Context, id int64) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ids[id], nil
}

func (b *memBloom) BulkAdd(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		_ = b.Add(ctx, id)
	}
	return nil
}

var (
	_ domain.CommentRepository      = (*memComments)(nil)
	_ domain.NotificationRepository = (*memNotifications)(nil)
	_ domain.UserRepository         = (*memUsers)(nil)
	_ domain.BloomRepository        = (*memBloom)(nil)
)
