package provisioning

import "context"

// Address holds a node's intended network address alongside the two
// sources it was reconciled from. The full triple is kept because the
// orchestrator needs to know whether the scheduler already has a usable
// address (no attachment wait needed) versus needs one assigned after
// launch.
type Address struct {
	// Chosen is the reconciled address, or "" when neither source knows
	// one and the provider should assign dynamically.
	Chosen string

	// DNS is the forward-lookup answer, "" when the name does not
	// resolve.
	DNS string

	// Scheduler is the scheduler's stored record, "" when unset or
	// stale-free for a new node.
	Scheduler string
}

// ResolveAddress determines the intended address for hostname by
// cross-referencing DNS and the scheduler's node record. DNS wins when
// both disagree.
func (p *Provisioner) ResolveAddress(ctx context.Context, hostname string) (Address, error) {
	dnsIP, _ := p.dns.LookupIPv4(ctx, hostname)

	schedIP, err := p.sched.NodeAddress(ctx, hostname)
	if err != nil {
		return Address{}, err
	}

	addr := Address{DNS: dnsIP, Scheduler: schedIP}
	if dnsIP != "" {
		addr.Chosen = dnsIP
	} else {
		addr.Chosen = schedIP
	}
	return addr, nil
}
