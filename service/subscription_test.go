package service

import (
	"context"
	"net/http"
	"testing"

	"playtube/dao"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T) (*SubscriptionService, *testDeps) {
	db := newTestDB(t)
	return &SubscriptionService{
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		UsersRepo:       dao.NewUsers(db),
	}, &testDeps{db: db}
}

func TestSubscriptionService_ToggleRoundTrip(t *testing.T) {
	svc, deps := newSubscriptionService(t)
	ctx := context.Background()

	alice := seedUser(t, deps.db, "alice", "s3cret!")
	bob := seedUser(t, deps.db, "bob", "s3cret!")

	state, err := svc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, state)

	state, err = svc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, state)
}

func TestSubscriptionService_Toggle_SelfAndMissing(t *testing.T) {
	svc, deps := newSubscriptionService(t)
	ctx := context.Background()

	alice := seedUser(t, deps.db, "alice", "s3cret!")

	_, err := svc.Toggle(ctx, alice.ID, alice.ID)
	assert.True(t, isBizError(err, http.StatusBadRequest))

	_, err = svc.Toggle(ctx, alice.ID, 123456)
	assert.True(t, isBizError(err, http.StatusNotFound))
}

func TestSubscriptionService_Lists(t *testing.T) {
	svc, deps := newSubscriptionService(t)
	ctx := context.Background()

	alice := seedUser(t, deps.db, "alice", "s3cret!")
	bob := seedUser(t, deps.db, "bob", "s3cret!")

	_, err := svc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	subscribers, err := svc.ChannelSubscribers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "bob", subscribers[0].Username)

	channels, err := svc.SubscribedChannels(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "alice", channels[0].Username)

	_, err = svc.ChannelSubscribers(ctx, 123456)
	assert.True(t, isBizError(err, http.StatusNotFound))
}
