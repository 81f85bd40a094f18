package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-realtime-comments/domain"
	"github.com/Guyuepp/go-realtime-comments/internal/repository"
	"github.com/Guyuepp/go-realtime-comments/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	if comment.Likes == nil {
		comment.Likes = []int64{}
	}
	if comment.Dislikes == nil {
		comment.Dislikes = []int64{}
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var m model.Comment
	err := c.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res := m.ToDomain()
	if err := c.loadReactions(ctx, []*domain.Comment{&res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *commentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Comment, error) {
	if len(ids) == 0 {
		return []*domain.Comment{}, nil
	}
	var comments []model.Comment
	if err := c.DB.WithContext(ctx).Where("id IN ?", ids).Find(&comments).Error; err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, cursor string, limit int64) ([]*domain.Comment, error) {
	repository.PageVerify(&limit)
	q := c.DB.WithContext(ctx).Where("parent_id IS NULL")
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	var comments []model.Comment
	err := q.Order("created_at DESC, id DESC").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := toDomainComments(comments)
	if err := c.loadReactions(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []*domain.Comment{}, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := toDomainComments(comments)
	if err := c.loadReactions(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ToggleReaction runs the read-modify-write under a row lock on the comment,
// so concurrent toggles on one comment are serialized.
func (c *commentRepository) ToggleReaction(ctx context.Context, commentID, userID int64, kind domain.ReactionKind) (domain.ReactionChange, error) {
	var change domain.ReactionChange
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cm model.Comment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cm, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var existing model.CommentReaction
		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Limit(1).Find(&existing)
		if res.Error != nil {
			return res.Error
		}
		current := domain.ReactionNone
		if res.RowsAffected > 0 {
			current = domain.ReactionKind(existing.Kind)
		}

		next, ch := domain.ToggleReaction(current, kind)
		ch.AuthorID = cm.UserID
		change = ch
		if next == domain.ReactionNone {
			return tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
				Delete(&model.CommentReaction{}).Error
		}

		row := model.NewCommentReaction(commentID, userID, next)
		row.CreatedAt = time.Now()
		return tx.Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"kind", "created_at"}),
		}).Create(&row).Error
	})
	if err != nil {
		return domain.ReactionChange{}, err
	}
	return change, nil
}

// Delete removes id and its direct children only; deeper replies are left in place.
func (c *commentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var childIDs []int64
		if err := tx.Model(&model.Comment{}).Where("parent_id = ?", id).Pluck("id", &childIDs).Error; err != nil {
			return err
		}
		ids := append([]int64{id}, childIDs...)

		if err := tx.Where("comment_id IN ?", ids).Delete(&model.CommentReaction{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

func (c *commentRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

func (c *commentRepository) loadReactions(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]int64, len(comments))
	for i, cm := range comments {
		ids[i] = cm.ID
	}

	var rows []model.CommentReaction
	err := c.DB.WithContext(ctx).
		Where("comment_id IN ?", ids).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return err
	}
	model.ApplyReactions(comments, rows)
	return nil
}

func toDomainComments(comments []model.Comment) []*domain.Comment {
	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		dc := comments[i].ToDomain()
		res = append(res, &dc)
	}
	return res
}
