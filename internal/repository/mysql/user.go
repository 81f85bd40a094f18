package mysql

import (
	"context"
	"errors"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/repository/mysql/model"
)

// erDupEntry is the MySQL duplicate-key error number.
const erDupEntry = 1062

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	if len(uids) == 0 {
		return []domain.User{}, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

func (m *userRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.User{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

func (m *userRepository) Follow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	edge := &model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	err := m.DB.WithContext(ctx).Create(edge).Error
	if err != nil {
		var myErr *mysqldriver.MySQLError
		if errors.As(err, &myErr) && myErr.Number == erDupEntry {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *userRepository) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (m *userRepository) FetchFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	res := []int64{}
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Order("created_at").
		Pluck("follower_id", &res).Error
	return res, err
}

func (m *userRepository) FetchFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	res := []int64{}
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at").
		Pluck("followee_id", &res).Error
	return res, err
}
