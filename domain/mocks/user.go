package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (domain.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	ret := _m.Called(ctx, ids)

	var r0 []domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) ([]domain.User, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []int64) []domain.User); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []int64) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchIDs provides a mock function with given fields: ctx, cursor, limit
func (_m *UserRepository) FetchIDs(ctx context.Context, cursor int64, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)

	var r0 []int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) ([]int64, error)); ok {
		return rf(ctx, cursor, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) []int64); ok {
		r0 = rf(ctx, cursor, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, cursor, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Follow provides a mock function with given fields: ctx, followerID, followeeID
func (_m *UserRepository) Follow(ctx context.Context, followerID int64, followeeID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, followeeID)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (bool, error)); ok {
		return rf(ctx, followerID, followeeID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) bool); ok {
		r0 = rf(ctx, followerID, followeeID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(bool)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, followerID, followeeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Unfollow provides a mock function with given fields: ctx, followerID, followeeID
func (_m *UserRepository) Unfollow(ctx context.Context, followerID int64, followeeID int64) (bool, error) {
	ret := _m.Called(ctx, followerID, followeeID)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (bool, error)); ok {
		return rf(ctx, followerID, followeeID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) bool); ok {
		r0 = rf(ctx, followerID, followeeID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(bool)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, followerID, followeeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchFollowerIDs provides a mock function with given fields: ctx, userID
func (_m *UserRepository) FetchFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	ret := _m.Called(ctx, userID)

	var r0 []int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []int64); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchFollowingIDs provides a mock function with given fields: ctx, userID
func (_m *UserRepository) FetchFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	ret := _m.Called(ctx, userID)

	var r0 []int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []int64); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserRepository creates a new instance of UserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UserCache is a mock type for the UserCache type
type UserCache struct {
	mock.Mock
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *UserCache) GetUser(ctx context.Context, id int64) (domain.User, bool, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.User
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (domain.User, bool, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) bool); ok {
		r1 = rf(ctx, id)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(bool)
		}
	}

	if rf, ok := ret.Get(2).(func(context.Context, int64) error); ok {
		r2 = rf(ctx, id)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MGetUsers provides a mock function with given fields: ctx, ids
func (_m *UserCache) MGetUsers(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[int64]domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) (map[int64]domain.User, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []int64) map[int64]domain.User); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[int64]domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []int64) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetUser provides a mock function with given fields: ctx, u, ttl
func (_m *UserCache) SetUser(ctx context.Context, u domain.User, ttl time.Duration) error {
	ret := _m.Called(ctx, u, ttl)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.User, time.Duration) error); ok {
		r0 = rf(ctx, u, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// BatchSetUsers provides a mock function with given fields: ctx, us, ttl
func (_m *UserCache) BatchSetUsers(ctx context.Context, us []domain.User, ttl time.Duration) error {
	ret := _m.Called(ctx, us, ttl)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []domain.User, time.Duration) error); ok {
		r0 = rf(ctx, us, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteUser provides a mock function with given fields: ctx, id
func (_m *UserCache) DeleteUser(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewUserCache creates a new instance of UserCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserCache {
	m := &UserCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UserUsecase is a mock type for the UserUsecase type
type UserUsecase struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserUsecase) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (domain.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Follow provides a mock function with given fields: ctx, userID, targetID
func (_m *UserUsecase) Follow(ctx context.Context, userID int64, targetID int64) (domain.User, error) {
	ret := _m.Called(ctx, userID, targetID)

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (domain.User, error)); ok {
		return rf(ctx, userID, targetID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) domain.User); ok {
		r0 = rf(ctx, userID, targetID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, userID, targetID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Unfollow provides a mock function with given fields: ctx, userID, targetID
func (_m *UserUsecase) Unfollow(ctx context.Context, userID int64, targetID int64) (domain.User, error) {
	ret := _m.Called(ctx, userID, targetID)

	var r0 domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (domain.User, error)); ok {
		return rf(ctx, userID, targetID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) domain.User); ok {
		r0 = rf(ctx, userID, targetID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, userID, targetID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListFollowers provides a mock function with given fields: ctx, userID
func (_m *UserUsecase) ListFollowers(ctx context.Context, userID int64) ([]domain.User, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.User, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.User); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListFollowing provides a mock function with given fields: ctx, userID
func (_m *UserUsecase) ListFollowing(ctx context.Context, userID int64) ([]domain.User, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.User, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.User); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserUsecase creates a new instance of UserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserUsecase {
	m := &UserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
