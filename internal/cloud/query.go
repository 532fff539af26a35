package cloud

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Query provides read-only lookups against the provider: current
// lifecycle state by hostname, network attachment, private address.
// Every call re-queries the provider; nothing is cached, so decisions
// are never made on stale records.
type Query struct {
	Client Client
	Log    logr.Logger
}

// CurrentState returns the lifecycle state of the instance whose display
// name matches hostname. No instance, or only terminated ones, reads as
// StateTerminated. More than one live match is a scheduler
// double-provisioning anomaly: it is logged and the first match is used,
// never treated as an error.
func (q Query) CurrentState(ctx context.Context, compartmentID, hostname string) (LifecycleState, error) {
	matches, err := q.Client.ListInstances(ctx, compartmentID, hostname)
	if err != nil {
		return "", fmt.Errorf("resolving state of %s: %w", hostname, err)
	}

	var live []Instance
	for _, inst := range matches {
		if inst.State != StateTerminated {
			live = append(live, inst)
		}
	}
	if len(live) == 0 {
		return StateTerminated, nil
	}
	if len(live) > 1 {
		q.Log.Error(nil, "multiple non-terminated instances share a display name",
			"node", hostname, "count", len(live))
	}
	return live[0].State, nil
}

// FirstActive returns the first instance for hostname that is neither
// terminated nor already terminating, if any. This is the teardown view:
// an instance already on its way out needs no second terminate call.
func (q Query) FirstActive(ctx context.Context, compartmentID, hostname string) (Instance, bool, error) {
	matches, err := q.Client.ListInstances(ctx, compartmentID, hostname)
	if err != nil {
		return Instance{}, false, fmt.Errorf("looking up %s: %w", hostname, err)
	}
	for _, inst := range matches {
		if inst.State != StateTerminated && inst.State != StateTerminating {
			return inst, true, nil
		}
	}
	return Instance{}, false, nil
}

// NetworkAttachment returns the first VNIC attachment of an instance, or
// ok=false while none has materialized yet.
func (q Query) NetworkAttachment(ctx context.Context, compartmentID, instanceID string) (Attachment, bool, error) {
	attachments, err := q.Client.ListAttachments(ctx, compartmentID, instanceID)
	if err != nil {
		return Attachment{}, false, fmt.Errorf("listing attachments of %s: %w", instanceID, err)
	}
	if len(attachments) == 0 {
		return Attachment{}, false, nil
	}
	return attachments[0], true, nil
}

// PrivateAddress resolves the private IP bound to an attachment's VNIC.
func (q Query) PrivateAddress(ctx context.Context, attachment Attachment) (string, error) {
	ip, err := q.Client.VnicPrivateIP(ctx, attachment.VnicID)
	if err != nil {
		return "", fmt.Errorf("resolving address of vnic %s: %w", attachment.VnicID, err)
	}
	return ip, nil
}
