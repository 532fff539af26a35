package provisioning

import "context"

// TerminateNodes terminates the backing instance of each hostname.
// Hosts are processed independently: one failure is logged and the rest
// continue, with no rollback. A hostname with no live instance counts as
// already terminated, so the operation is idempotent.
func (p *Provisioner) TerminateNodes(ctx context.Context, hostnames []string) {
	for _, hostname := range hostnames {
		log := p.log.WithValues("node", hostname)
		log.Info("stopping node")

		if err := p.terminateNode(ctx, hostname); err != nil {
			log.Error(err, "problem while stopping")
			terminationsTotal.WithLabelValues("error").Inc()
			continue
		}
		terminationsTotal.WithLabelValues("ok").Inc()
		log.Info("stopped")
	}
}

func (p *Provisioner) terminateNode(ctx context.Context, hostname string) error {
	instance, ok, err := p.query.FirstActive(ctx, p.space.CompartmentID, hostname)
	if err != nil {
		return err
	}
	if !ok {
		// Nothing live to terminate.
		return nil
	}
	return p.cloud.TerminateInstance(ctx, instance.ID)
}
