package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

// Store provides a mock function with given fields: ctx, c
func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Comment) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Comment, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Comment); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
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
func (_m *CommentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Comment, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) ([]*domain.Comment, error)); ok {
		return rf(ctx, ids)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []int64) []*domain.Comment); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []int64) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchRoots provides a mock function with given fields: ctx, cursor, limit
func (_m *CommentRepository) FetchRoots(ctx context.Context, cursor string, limit int64) ([]*domain.Comment, error) {
	ret := _m.Called(ctx, cursor, limit)

	var r0 []*domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) ([]*domain.Comment, error)); ok {
		return rf(ctx, cursor, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) []*domain.Comment); ok {
		r0 = rf(ctx, cursor, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, cursor, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchReplies provides a mock function with given fields: ctx, parentIDs
func (_m *CommentRepository) FetchReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	ret := _m.Called(ctx, parentIDs)

	var r0 []*domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) ([]*domain.Comment, error)); ok {
		return rf(ctx, parentIDs)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []int64) []*domain.Comment); ok {
		r0 = rf(ctx, parentIDs)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []int64) error); ok {
		r1 = rf(ctx, parentIDs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ToggleReaction provides a mock function with given fields: ctx, commentID, userID, kind
func (_m *CommentRepository) ToggleReaction(ctx context.Context, commentID int64, userID int64, kind domain.ReactionKind) (domain.ReactionChange, error) {
	ret := _m.Called(ctx, commentID, userID, kind)

	var r0 domain.ReactionChange
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, domain.ReactionKind) (domain.ReactionChange, error)); ok {
		return rf(ctx, commentID, userID, kind)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, domain.ReactionKind) domain.ReactionChange); ok {
		r0 = rf(ctx, commentID, userID, kind)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.ReactionChange)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, domain.ReactionKind) error); ok {
		r1 = rf(ctx, commentID, userID, kind)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *CommentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int64, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchIDs provides a mock function with given fields: ctx, cursor, limit
func (_m *CommentRepository) FetchIDs(ctx context.Context, cursor int64, limit int64) ([]int64, error) {
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

// NewCommentRepository creates a new instance of CommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentRepository {
	m := &CommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, authorID, content
func (_m *CommentUsecase) Create(ctx context.Context, authorID int64, content string) (*domain.Comment, error) {
	ret := _m.Called(ctx, authorID, content)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*domain.Comment, error)); ok {
		return rf(ctx, authorID, content)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) *domain.Comment); ok {
		r0 = rf(ctx, authorID, content)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, authorID, content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Reply provides a mock function with given fields: ctx, authorID, parentID, content
func (_m *CommentUsecase) Reply(ctx context.Context, authorID int64, parentID int64, content string) (*domain.Comment, error) {
	ret := _m.Called(ctx, authorID, parentID, content)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, string) (*domain.Comment, error)); ok {
		return rf(ctx, authorID, parentID, content)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, string) *domain.Comment); ok {
		r0 = rf(ctx, authorID, parentID, content)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, string) error); ok {
		r1 = rf(ctx, authorID, parentID, content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ToggleLike provides a mock function with given fields: ctx, commentID, userID
func (_m *CommentUsecase) ToggleLike(ctx context.Context, commentID int64, userID int64) (*domain.Comment, error) {
	ret := _m.Called(ctx, commentID, userID)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (*domain.Comment, error)); ok {
		return rf(ctx, commentID, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *domain.Comment); ok {
		r0 = rf(ctx, commentID, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, commentID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ToggleDislike provides a mock function with given fields: ctx, commentID, userID
func (_m *CommentUsecase) ToggleDislike(ctx context.Context, commentID int64, userID int64) (*domain.Comment, error) {
	ret := _m.Called(ctx, commentID, userID)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (*domain.Comment, error)); ok {
		return rf(ctx, commentID, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) *domain.Comment); ok {
		r0 = rf(ctx, commentID, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, commentID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, commentID, requesterID
func (_m *CommentUsecase) Delete(ctx context.Context, commentID int64, requesterID int64) error {
	ret := _m.Called(ctx, commentID, requesterID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) error); ok {
		r0 = rf(ctx, commentID, requesterID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListTopLevel provides a mock function with given fields: ctx, cursor, num
func (_m *CommentUsecase) ListTopLevel(ctx context.Context, cursor string, num int64) ([]*domain.Comment, string, error) {
	ret := _m.Called(ctx, cursor, num)

	var r0 []*domain.Comment
	var r1 string
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) ([]*domain.Comment, string, error)); ok {
		return rf(ctx, cursor, num)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) []*domain.Comment); ok {
		r0 = rf(ctx, cursor, num)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64) string); ok {
		r1 = rf(ctx, cursor, num)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(string)
		}
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, int64) error); ok {
		r2 = rf(ctx, cursor, num)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *CommentUsecase) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Comment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Comment, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Comment); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Comment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InitBloomFilter provides a mock function with given fields: ctx
func (_m *CommentUsecase) InitBloomFilter(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewCommentUsecase creates a new instance of CommentUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCommentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentUsecase {
	m := &CommentUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
