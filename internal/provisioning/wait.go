package provisioning

import (
	"context"
	"time"
)

// waitUntil polls cond at the provisioner's poll interval until it
// reports done. There is deliberately no timeout: both waits this serves
// (termination draining, VNIC attachment) sit on operations the provider
// guarantees to finish eventually, and aborting would strand a
// half-launched instance with no cleanup path. Cancellation of ctx is
// the only way out.
func (p *Provisioner) waitUntil(ctx context.Context, cond func(context.Context) (bool, error)) error {
	for {
		done, err := cond(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.pollInterval):
		}
	}
}
