package provisioning

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
	"github.com/clusterinthecloud/nodectl/internal/image"
	"github.com/clusterinthecloud/nodectl/internal/scheduler"
	"github.com/clusterinthecloud/nodectl/internal/util/retry"
)

// buildLaunchDetails assembles the full launch specification for a node:
// profile from the scheduler's feature tags, image by (GPU flag, region),
// the cluster's private subnet, and the bootstrap metadata. Every failure
// here is a configuration defect and propagates.
func (p *Provisioner) buildLaunchDetails(ctx context.Context, hostname, staticIP string) (cloud.LaunchDetails, error) {
	features, err := p.sched.NodeFeatures(ctx, hostname)
	if err != nil {
		return cloud.LaunchDetails{}, fmt.Errorf("node %s: %w", hostname, err)
	}
	profile, err := scheduler.ParseProfile(features)
	if err != nil {
		return cloud.LaunchDetails{}, fmt.Errorf("node %s: %w", hostname, err)
	}

	imageID, err := p.image.Resolve(image.ForShape(profile.Shape), p.space.Region)
	if err != nil {
		return cloud.LaunchDetails{}, fmt.Errorf("node %s: %w", hostname, err)
	}

	subnetID, err := p.cloud.PrivateSubnet(ctx, p.space.CompartmentID, p.space.VcnID)
	if err != nil {
		return cloud.LaunchDetails{}, fmt.Errorf("node %s: %w", hostname, err)
	}

	return cloud.LaunchDetails{
		CompartmentID:      p.space.CompartmentID,
		AvailabilityDomain: p.space.ADRoot + profile.ADNumber,
		Shape:              profile.Shape,
		SubnetID:           subnetID,
		ImageID:            imageID,
		DisplayName:        hostname,
		HostnameLabel:      hostname,
		PrivateIP:          staticIP,
		SSHKeys:            p.sshKeys,
		UserData:           base64.StdEncoding.EncodeToString(p.bootstrap),
	}, nil
}

// launch issues the create-instance call under the bounded retry policy.
// The call runs in its own goroutine so a slow provider response cannot
// starve the caller's polling work; cancellation abandons the wait but
// not the in-flight request, which is reconciled by a later state query.
// Transient service errors are retried; anything else fails the launch
// immediately.
func (p *Provisioner) launch(ctx context.Context, log logr.Logger, details cloud.LaunchDetails) (cloud.Instance, error) {
	type launched struct {
		instance cloud.Instance
		err      error
	}
	done := make(chan launched, 1)

	go func() {
		var instance cloud.Instance
		err := retry.Do(ctx, func() error {
			inst, err := p.cloud.LaunchInstance(ctx, details)
			if err != nil {
				if !cloud.IsRetryable(err) {
					return retry.Fatal(err)
				}
				log.Info("transient launch failure, retrying", "error", err.Error())
				return err
			}
			instance = inst
			return nil
		},
			retry.WithMaxAttempts(p.launchAttempts),
			retry.WithMaxElapsed(p.launchElapsed),
		)
		done <- launched{instance: instance, err: err}
	}()

	select {
	case <-ctx.Done():
		return cloud.Instance{}, ctx.Err()
	case res := <-done:
		return res.instance, res.err
	}
}
