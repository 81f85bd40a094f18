package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

const userCacheTTL = 10 * time.Minute

// userRepository 协调层，协调用户缓存和数据库
type userRepository struct {
	db            domain.UserRepository
	cache         domain.UserCache
	rebuildGroup  singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[int64]bool // 正在重建的用户ID
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository 创建协调层repository
func NewUserRepository(db domain.UserRepository, cache domain.UserCache) *userRepository {
	return &userRepository{
		db:            db,
		cache:         cache,
		rebuildingMap: make(map[int64]bool),
	}
}

// GetByID 根据ID获取用户，使用逻辑过期策略避免缓存击穿
func (r *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	// 1. 先从缓存获取
	user, expired, err := r.cache.GetUser(ctx, id)
	if err == nil {
		if expired {
			go r.rebuildUserCache(context.Background(), id)
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("user cache unavailable, falling back to db: %v", err)
	}

	// 2. 缓存未命中，使用singleflight避免缓存击穿
	result, err, _ := r.rebuildGroup.Do(userKey(id), func() (any, error) {
		return r.loadUser(ctx, id)
	})
	if err != nil {
		return domain.User{}, err
	}
	return result.(domain.User), nil
}

// GetByIDs 批量获取用户，缓存缺失部分回源数据库
func (r *userRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	cached, err := r.cache.MGetUsers(ctx, ids)
	if err != nil {
		logrus.Warnf("user cache unavailable, falling back to db: %v", err)
		cached = map[int64]domain.User{}
	}

	res := make([]domain.User, 0, len(ids))
	missing := make([]int64, 0, len(ids)-len(cached))
	for _, id := range ids {
		if u, ok := cached[id]; ok {
			res = append(res, u)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return res, nil
	}

	users, err := r.db.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	if err := r.cache.BatchSetUsers(ctx, users, userCacheTTL); err != nil {
		logrus.Warnf("failed to cache %d users: %v", len(users), err)
	}
	return append(res, users...), nil
}

// FetchIDs 获取用户ID列表
func (r *userRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// Follow/Unfollow 不影响缓存，缓存中不保存关注关系
func (r *userRepository) Follow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return r.db.Follow(ctx, followerID, followeeID)
}

func (r *userRepository) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return r.db.Unfollow(ctx, followerID, followeeID)
}

func (r *userRepository) FetchFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.db.FetchFollowerIDs(ctx, userID)
}

func (r *userRepository) FetchFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.db.FetchFollowingIDs(ctx, userID)
}

func (r *userRepository) loadUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if err := r.cache.SetUser(ctx, user, userCacheTTL); err != nil {
		logrus.Warnf("failed to cache user %d: %v", id, err)
	}
	return user, nil
}

// rebuildUserCache 异步重建用户缓存
func (r *userRepository) rebuildUserCache(ctx context.Context, id int64) {
	// 检查是否已经在重建中
	r.mu.Lock()
	if r.rebuildingMap[id] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[id] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, id)
		r.mu.Unlock()
	}()

	_, err, _ := r.rebuildGroup.Do("rebuild:"+userKey(id), func() (any, error) {
		user, err := r.loadUser(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			// 用户不存在，删除缓存
			_ = r.cache.DeleteUser(ctx, id)
		}
		return user, err
	})
	if err != nil {
		logrus.Errorf("rebuildUserCache failed for id %d: %v", id, err)
	}
}

func userKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}
