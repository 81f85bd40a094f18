package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

// NotificationRepository is a mock type for the NotificationRepository type
type NotificationRepository struct {
	mock.Mock
}

// Store provides a mock function with given fields: ctx, n
func (_m *NotificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	ret := _m.Called(ctx, n)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Notification) error); ok {
		r0 = rf(ctx, n)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// StoreBatch provides a mock function with given fields: ctx, ns
func (_m *NotificationRepository) StoreBatch(ctx context.Context, ns []*domain.Notification) error {
	ret := _m.Called(ctx, ns)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []*domain.Notification) error); ok {
		r0 = rf(ctx, ns)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *NotificationRepository) GetByID(ctx context.Context, id int64) (domain.Notification, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (domain.Notification, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.Notification); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchByRecipient provides a mock function with given fields: ctx, recipientID, unreadOnly
func (_m *NotificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	ret := _m.Called(ctx, recipientID, unreadOnly)

	var r0 []domain.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, bool) ([]domain.Notification, error)); ok {
		return rf(ctx, recipientID, unreadOnly)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, bool) []domain.Notification); ok {
		r0 = rf(ctx, recipientID, unreadOnly)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, bool) error); ok {
		r1 = rf(ctx, recipientID, unreadOnly)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MarkRead provides a mock function with given fields: ctx, id
func (_m *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MarkAllRead provides a mock function with given fields: ctx, recipientID
func (_m *NotificationRepository) MarkAllRead(ctx context.Context, recipientID int64) error {
	ret := _m.Called(ctx, recipientID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, recipientID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *NotificationRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteByRecipient provides a mock function with given fields: ctx, recipientID
func (_m *NotificationRepository) DeleteByRecipient(ctx context.Context, recipientID int64) (int64, error) {
	ret := _m.Called(ctx, recipientID)

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int64, error)); ok {
		return rf(ctx, recipientID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, recipientID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, recipientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNotificationRepository creates a new instance of NotificationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NotificationUsecase is a mock type for the NotificationUsecase type
type NotificationUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, recipientID, unreadOnly
func (_m *NotificationUsecase) List(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	ret := _m.Called(ctx, recipientID, unreadOnly)

	var r0 []domain.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, bool) ([]domain.Notification, error)); ok {
		return rf(ctx, recipientID, unreadOnly)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, bool) []domain.Notification); ok {
		r0 = rf(ctx, recipientID, unreadOnly)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, bool) error); ok {
		r1 = rf(ctx, recipientID, unreadOnly)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MarkRead provides a mock function with given fields: ctx, id, requesterID
func (_m *NotificationUsecase) MarkRead(ctx context.Context, id int64, requesterID int64) (domain.Notification, error) {
	ret := _m.Called(ctx, id, requesterID)

	var r0 domain.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) (domain.Notification, error)); ok {
		return rf(ctx, id, requesterID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) domain.Notification); ok {
		r0 = rf(ctx, id, requesterID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(domain.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, id, requesterID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MarkAllRead provides a mock function with given fields: ctx, recipientID
func (_m *NotificationUsecase) MarkAllRead(ctx context.Context, recipientID int64) error {
	ret := _m.Called(ctx, recipientID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, recipientID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteOne provides a mock function with given fields: ctx, id, requesterID
func (_m *NotificationUsecase) DeleteOne(ctx context.Context, id int64, requesterID int64) error {
	ret := _m.Called(ctx, id, requesterID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) error); ok {
		r0 = rf(ctx, id, requesterID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteAll provides a mock function with given fields: ctx, recipientID
func (_m *NotificationUsecase) DeleteAll(ctx context.Context, recipientID int64) (int64, error) {
	ret := _m.Called(ctx, recipientID)

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int64, error)); ok {
		return rf(ctx, recipientID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, recipientID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(int64)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, recipientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNotificationUsecase creates a new instance of NotificationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationUsecase {
	m := &NotificationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
