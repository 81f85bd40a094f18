package redis

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

const (
	KeyCommentBloom = "bloom:comment:ids"

	defaultBloomHashes = 3
	// bulkAddChunk bounds the ids sent in one pipeline
	bulkAddChunk = 500
)

// bloomFilter 基于 Redis bitmap 的布隆过滤器
// 第 i 个 offset = h1 + i*h2 (FNV-1a 64 位拆成两半的双重哈希)
type bloomFilter struct {
	client  *redis.Client
	key     string
	bitSize uint64
	hashes  int
}

var _ domain.BloomRepository = (*bloomFilter)(nil)

// NewRedisBloomRepo returns the comment id filter.
func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *bloomFilter {
	return newBloomFilter(client, KeyCommentBloom, bitSize, defaultBloomHashes)
}

func newBloomFilter(client *redis.Client, key string, bitSize uint64, hashes int) *bloomFilter {
	if bitSize == 0 {
		bitSize = 1
	}
	if hashes <= 0 {
		hashes = defaultBloomHashes
	}
	return &bloomFilter{
		client:  client,
		key:     key,
		bitSize: bitSize,
		hashes:  hashes,
	}
}

func (b *bloomFilter) Add(ctx context.Context, id int64) error {
	return b.setBits(ctx, []int64{id})
}

func (b *bloomFilter) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := b.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, b.hashes)
	for _, off := range b.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, b.key, int64(off)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (b *bloomFilter) BulkAdd(ctx context.Context, ids []int64) error {
	for chunk := range slices.Chunk(ids, bulkAddChunk) {
		if err := b.setBits(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (b *bloomFilter) setBits(ctx context.Context, ids []int64) error {
	pipe := b.client.Pipeline()
	for _, id := range ids {
		for _, off := range b.offsets(id) {
			pipe.SetBit(ctx, b.key, int64(off), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (b *bloomFilter) offsets(id int64) []uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	sum := h.Sum64()

	h1 := sum & 0xffffffff
	h2 := sum>>32 | 1
	res := make([]uint64, b.hashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % b.bitSize
	}
	return res
}
