package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
	"github.com/clusterinthecloud/nodectl/internal/netutil"
	"github.com/clusterinthecloud/nodectl/internal/scheduler"
)

func TestTerminateNodes_TerminatesLiveInstance(t *testing.T) {
	t.Parallel()
	var terminated []string
	client := &cloud.MockClient{
		ListInstancesFunc: func(_ context.Context, _, displayName string) ([]cloud.Instance, error) {
			return []cloud.Instance{{ID: "inst-" + displayName, DisplayName: displayName, State: cloud.StateRunning}}, nil
		},
		TerminateInstanceFunc: func(_ context.Context, instanceID string) error {
			terminated = append(terminated, instanceID)
			return nil
		},
	}

	p := newTestProvisioner(t, client, &scheduler.Mock{}, netutil.StaticResolver{})
	p.TerminateNodes(context.Background(), []string{"node1", "node2"})

	assert.Equal(t, []string{"inst-node1", "inst-node2"}, terminated)
}

// Terminating a node with no live instance is silent success, so a
// second terminate call never errors.
func TestTerminateNodes_Idempotent(t *testing.T) {
	t.Parallel()
	calls := 0
	client := &cloud.MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]cloud.Instance, error) {
			return []cloud.Instance{{ID: "gone", State: cloud.StateTerminated}}, nil
		},
		TerminateInstanceFunc: func(context.Context, string) error {
			calls++
			return nil
		},
	}

	p := newTestProvisioner(t, client, &scheduler.Mock{}, netutil.StaticResolver{})
	p.TerminateNodes(context.Background(), []string{"node1"})
	p.TerminateNodes(context.Background(), []string{"node1"})

	assert.Zero(t, calls, "nothing live, nothing to terminate")
}

func TestTerminateNodes_FailureDoesNotStopRemainingHosts(t *testing.T) {
	t.Parallel()
	var terminated []string
	client := &cloud.MockClient{
		ListInstancesFunc: func(_ context.Context, _, displayName string) ([]cloud.Instance, error) {
			return []cloud.Instance{{ID: "inst-" + displayName, DisplayName: displayName, State: cloud.StateRunning}}, nil
		},
		TerminateInstanceFunc: func(_ context.Context, instanceID string) error {
			if instanceID == "inst-node1" {
				return errors.New("instance is locked")
			}
			terminated = append(terminated, instanceID)
			return nil
		},
	}

	p := newTestProvisioner(t, client, &scheduler.Mock{}, netutil.StaticResolver{})
	p.TerminateNodes(context.Background(), []string{"node1", "node2", "node3"})

	assert.Equal(t, []string{"inst-node2", "inst-node3"}, terminated)
}

// An instance already on its way out needs no second terminate call.
func TestTerminateNodes_SkipsTerminating(t *testing.T) {
	t.Parallel()
	calls := 0
	client := &cloud.MockClient{
		ListInstancesFunc: func(context.Context, string, string) ([]cloud.Instance, error) {
			return []cloud.Instance{{ID: "draining", State: cloud.StateTerminating}}, nil
		},
		TerminateInstanceFunc: func(context.Context, string) error {
			calls++
			return nil
		},
	}

	p := newTestProvisioner(t, client, &scheduler.Mock{}, netutil.StaticResolver{})
	p.TerminateNodes(context.Background(), []string{"node1"})

	assert.Zero(t, calls)
}
