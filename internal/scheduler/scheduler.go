// Package scheduler integrates with the cluster scheduler's node
// registry: feature tags, stored node addresses, and address updates.
package scheduler

import (
	"context"
	"fmt"
	"strings"
)

// Scheduler is the controller's view of the cluster scheduler. The
// scheduler owns the node registry; the controller only reads feature
// tags and reads/writes the node address field.
type Scheduler interface {
	// NodeFeatures returns the raw feature-tag string for a node.
	NodeFeatures(ctx context.Context, hostname string) (string, error)

	// NodeAddress returns the scheduler's stored address for a node, or
	// "" when none is recorded. A missing address is expected for a node
	// that has never been launched.
	NodeAddress(ctx context.Context, hostname string) (string, error)

	// SetNodeAddress updates the node's address field so downstream
	// consumers can route to it.
	SetNodeAddress(ctx context.Context, hostname, address string) error
}

// Profile is the per-node launch profile encoded in the scheduler's
// feature tags. It is recomputed on every provisioning attempt so it
// always reflects current scheduler state.
type Profile struct {
	ADNumber string
	Shape    string
	GPU      bool
}

// ParseProfile extracts the launch profile from a comma-separated
// feature string such as "shape=VM.Standard2.1,ad=1". A missing shape or
// ad tag is a configuration defect and fails hard.
func ParseProfile(features string) (Profile, error) {
	var p Profile
	for _, f := range strings.Split(features, ",") {
		f = strings.TrimSpace(f)
		switch {
		case strings.HasPrefix(f, "ad="):
			p.ADNumber = strings.TrimPrefix(f, "ad=")
		case strings.HasPrefix(f, "shape="):
			p.Shape = strings.TrimPrefix(f, "shape=")
		}
	}
	if p.Shape == "" {
		return Profile{}, fmt.Errorf("feature string %q has no shape tag", features)
	}
	if p.ADNumber == "" {
		return Profile{}, fmt.Errorf("feature string %q has no ad tag", features)
	}
	p.GPU = strings.Contains(p.Shape, "GPU")
	return p, nil
}
