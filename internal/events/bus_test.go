package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-realtime-comments/domain"
)

func TestPublishRunsMatchingSubscribersInOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe("first", domain.EventHandlerFunc(func(_ context.Context, ev domain.Event) error {
		order = append(order, "first:"+string(ev.Type))
		return nil
	}), domain.EventCommentCreated, domain.EventReplyCreated)
	bus.Subscribe("likes-only", domain.EventHandlerFunc(func(_ context.Context, ev domain.Event) error {
		order = append(order, "likes:"+string(ev.Type))
		return nil
	}), domain.EventLikeUpdated)
	bus.Subscribe("all", domain.EventHandlerFunc(func(_ context.Context, ev domain.Event) error {
		order = append(order, "all:"+string(ev.Type))
		assert.False(t, ev.OccurredAt.IsZero())
		return nil
	}))

	require.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventCommentCreated}))
	require.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventLikeUpdated}))

	assert.Equal(t, []string{
		"first:commentCreated",
		"all:commentCreated",
		"likes:likeUpdated",
		"all:likeUpdated",
	}, order)
}

func TestPublishJoinsErrorsAndKeepsGoing(t *testing.T) {
	bus := NewBus()
	errStore := errors.New("store unavailable")
	called := false

	bus.Subscribe("failing", domain.EventHandlerFunc(func(context.Context, domain.Event) error {
		return errStore
	}))
	bus.Subscribe("after", domain.EventHandlerFunc(func(context.Context, domain.Event) error {
		called = true
		return nil
	}))

	err := bus.Publish(context.Background(), domain.Event{Type: domain.EventReplyCreated})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Contains(t, err.Error(), "failing handling replyCreated")
	assert.True(t, called)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	assert.NoError(t, NewBus().Publish(context.Background(), domain.Event{Type: domain.EventUserFollowed}))
}
