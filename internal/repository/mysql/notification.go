package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/repository/mysql/model"
)

const notificationBatchSize = 500

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	m := model.NewNotificationFromDomain(n)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

func (r *notificationRepository) StoreBatch(ctx context.Context, ns []*domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]*model.Notification, len(ns))
	for i, n := range ns {
		rows[i] = model.NewNotificationFromDomain(n)
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
	}
	if err := r.DB.WithContext(ctx).CreateInBatches(rows, notificationBatchSize).Error; err != nil {
		return err
	}
	for i := range ns {
		ns[i].ID = rows[i].ID
		ns[i].CreatedAt = rows[i].CreatedAt
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (domain.Notification, error) {
	var m model.Notification
	err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Notification{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return m.ToDomain(), nil
}

func (r *notificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]domain.Notification, error) {
	q := r.DB.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var rows []model.Notification
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports 0 affected rows when the flag was already set
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID int64) error {
	return r.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Delete(&model.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) DeleteByRecipient(ctx context.Context, recipientID int64) (int64, error) {
	result := r.DB.WithContext(ctx).Where("recipient_id = ?", recipientID).Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
