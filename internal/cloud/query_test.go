package cloud

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuery(t *testing.T, client Client) Query {
	t.Helper()
	return Query{Client: client, Log: testr.New(t)}
}

func TestCurrentState_NoMatches(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return nil, nil
		},
	})

	state, err := q.CurrentState(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	assert.Equal(t, StateTerminated, state)
}

func TestCurrentState_AllTerminated(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return []Instance{
				{ID: "a", DisplayName: "node1", State: StateTerminated},
				{ID: "b", DisplayName: "node1", State: StateTerminated},
			}, nil
		},
	})

	state, err := q.CurrentState(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	assert.Equal(t, StateTerminated, state)
}

func TestCurrentState_Running(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return []Instance{
				{ID: "a", DisplayName: "node1", State: StateTerminated},
				{ID: "b", DisplayName: "node1", State: StateRunning},
			}, nil
		},
	})

	state, err := q.CurrentState(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
}

// Two live instances with the same display name is a known-tolerated
// inconsistency: the first match wins and no error is raised.
func TestCurrentState_MultiMatchAnomaly(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return []Instance{
				{ID: "a", DisplayName: "node1", State: StateRunning},
				{ID: "b", DisplayName: "node1", State: StateStarting},
			}, nil
		},
	})

	state, err := q.CurrentState(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
}

func TestCurrentState_ListError(t *testing.T) {
	t.Parallel()
	boom := errors.New("api down")
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return nil, boom
		},
	})

	_, err := q.CurrentState(context.Background(), "compartment", "node1")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestFirstActive_SkipsTerminatingAndTerminated(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return []Instance{
				{ID: "a", State: StateTerminated},
				{ID: "b", State: StateTerminating},
				{ID: "c", State: StateRunning},
			}, nil
		},
	})

	inst, ok, err := q.FirstActive(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "c", inst.ID)
}

func TestFirstActive_NothingLive(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]Instance, error) {
			return []Instance{{ID: "a", State: StateTerminating}}, nil
		},
	})

	_, ok, err := q.FirstActive(context.Background(), "compartment", "node1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNetworkAttachment(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		ListAttachmentsFunc: func(context.Context, string, string) ([]Attachment, error) {
			return nil, nil
		},
	})

	_, ok, err := q.NetworkAttachment(context.Background(), "compartment", "inst")
	require.NoError(t, err)
	assert.False(t, ok)

	q.Client = &MockClient{
		ListAttachmentsFunc: func(context.Context, string, string) ([]Attachment, error) {
			return []Attachment{{ID: "att-1", VnicID: "vnic-1"}, {ID: "att-2", VnicID: "vnic-2"}}, nil
		},
	}
	att, ok, err := q.NetworkAttachment(context.Background(), "compartment", "inst")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "vnic-1", att.VnicID)
}

func TestPrivateAddress(t *testing.T) {
	t.Parallel()
	q := newQuery(t, &MockClient{
		VnicPrivateIPFunc: func(_ context.Context, vnicID string) (string, error) {
			assert.Equal(t, "vnic-1", vnicID)
			return "10.1.0.9", nil
		},
	})

	ip, err := q.PrivateAddress(context.Background(), Attachment{ID: "att-1", VnicID: "vnic-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.1.0.9", ip)
}
