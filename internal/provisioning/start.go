package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
)

// StartNode drives the named node from absent to ready: wait out a
// previous instance still terminating, launch, wait for the network
// attachment, and publish the resolved address to the scheduler.
//
// Expected conditions never surface as errors: a node that already
// exists yields OutcomeSkipped, a provider-rejected launch yields
// OutcomeAborted, both logged. Errors are reserved for configuration
// defects (malformed feature string, missing image or subnet) and for
// cancellation.
//
// Two concurrent StartNode calls for the same hostname are not
// coordinated: the already-exists guard narrows but does not close the
// window between the state check and the launch.
func (p *Provisioner) StartNode(ctx context.Context, hostname string) (Result, error) {
	log := p.log.WithValues("node", hostname)
	log.Info("starting node")
	start := time.Now()

	// A previous instance of this node may still be draining. Termination
	// always completes on the provider side, so wait it out.
	err := p.waitUntil(ctx, func(ctx context.Context) (bool, error) {
		state, err := p.query.CurrentState(ctx, p.space.CompartmentID, hostname)
		if err != nil {
			return false, err
		}
		if state == cloud.StateTerminating {
			log.Info("previous instance still terminating, waiting")
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return Result{}, err
	}

	state, err := p.query.CurrentState(ctx, p.space.CompartmentID, hostname)
	if err != nil {
		return Result{}, err
	}
	if state != cloud.StateTerminated {
		log.Info("node already exists, leaving it alone", "state", string(state))
		launchesTotal.WithLabelValues(OutcomeSkipped.String()).Inc()
		return Result{Outcome: OutcomeSkipped}, nil
	}

	addr, err := p.ResolveAddress(ctx, hostname)
	if err != nil {
		return Result{}, err
	}
	if addr.Chosen != "" {
		log.Info("using static address", "ip", addr.Chosen, "dns", addr.DNS, "scheduler", addr.Scheduler)
	}

	details, err := p.buildLaunchDetails(ctx, hostname, addr.Chosen)
	if err != nil {
		return Result{}, err
	}

	instance, err := p.launch(ctx, log, details)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		log.Error(err, "problem launching instance, giving up on this request")
		launchesTotal.WithLabelValues(OutcomeAborted.String()).Inc()
		return Result{Outcome: OutcomeAborted}, nil
	}

	result := Result{Outcome: OutcomeReady, Instance: instance, Address: addr.Chosen}

	// The scheduler can only route to the node once it knows an address.
	// When it already had one there is nothing to publish; otherwise wait
	// for the VNIC attachment and push the resolved IP.
	if addr.Scheduler == "" {
		var attachment cloud.Attachment
		err := p.waitUntil(ctx, func(ctx context.Context) (bool, error) {
			att, ok, err := p.query.NetworkAttachment(ctx, p.space.CompartmentID, instance.ID)
			if err != nil {
				return false, err
			}
			if !ok {
				log.Info("no network attachment yet, waiting")
				return false, nil
			}
			attachment = att
			return true, nil
		})
		if err != nil {
			return Result{}, err
		}

		ip, err := p.query.PrivateAddress(ctx, attachment)
		if err != nil {
			return Result{}, err
		}
		log.Info("resolved private address", "ip", ip)

		if err := p.sched.SetNodeAddress(ctx, hostname, ip); err != nil {
			return Result{}, err
		}
		result.Address = ip
	}

	launchesTotal.WithLabelValues(OutcomeReady.String()).Inc()
	launchDuration.Observe(time.Since(start).Seconds())
	log.Info("node started", "instance", instance.ID, "elapsed", time.Since(start).String())
	return result, nil
}
