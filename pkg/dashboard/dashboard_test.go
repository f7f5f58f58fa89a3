package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLiveServicePublishesEvents(t *testing.T) {
	ctx := context.Background()
	service, hook := NewLiveService(nil)
	defer service.Close(ctx)

	events, cancel := hook.Subscribe("")
	defer cancel()

	session, err := Mount(ctx, service)
	require.NoError(t, err)

	event := <-events
	assert.Equal(t, session.ID(), event.SessionID)
	assert.Equal(t, "mount", event.Reason)
	assert.Equal(t, UIState{}, event.State)
}
