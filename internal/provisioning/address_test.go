package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
	"github.com/clusterinthecloud/nodectl/internal/netutil"
	"github.com/clusterinthecloud/nodectl/internal/scheduler"
)

func TestResolveAddress_Precedence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		dns       netutil.StaticResolver
		scheduler string
		want      Address
	}{
		{
			name:      "dns wins over scheduler",
			dns:       netutil.StaticResolver{"nodeA": "10.0.0.5"},
			scheduler: "10.0.0.9",
			want:      Address{Chosen: "10.0.0.5", DNS: "10.0.0.5", Scheduler: "10.0.0.9"},
		},
		{
			name:      "scheduler fills in for missing dns",
			dns:       netutil.StaticResolver{},
			scheduler: "10.0.0.9",
			want:      Address{Chosen: "10.0.0.9", Scheduler: "10.0.0.9"},
		},
		{
			name: "neither source knows",
			dns:  netutil.StaticResolver{},
			want: Address{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sched := &scheduler.Mock{
				NodeAddressFunc: func(context.Context, string) (string, error) {
					return tt.scheduler, nil
				},
			}
			p := newTestProvisioner(t, &cloud.MockClient{}, sched, tt.dns)

			addr, err := p.ResolveAddress(context.Background(), "nodeA")
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}
