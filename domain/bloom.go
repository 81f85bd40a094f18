package domain

import "context"

// BloomRepository is a probabilistic set of comment ids used to reject
// lookups of ids that were never created without touching the database.
// Ids are never removed; deleted comments stay "possibly present".
type BloomRepository interface {
	Add(ctx context.Context, id int64) error

	// Exists 返回 false 表示一定不存在, true 表示可能存在 (需要查 DB)
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 启动时批量加载已有 ID
	BulkAdd(ctx context.Context, ids []int64) error
}
