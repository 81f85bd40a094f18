package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogicalExpire(t *testing.T) {
	fresh := NewDataWithLogicalExpire("v", time.Minute)
	assert.False(t, fresh.IsLogicalExpired())
	assert.Equal(t, "v", fresh.Data)

	stale := NewDataWithLogicalExpire(42, -time.Second)
	assert.True(t, stale.IsLogicalExpired())
}
