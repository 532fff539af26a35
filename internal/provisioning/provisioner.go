package provisioning

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
	"github.com/clusterinthecloud/nodectl/internal/config"
	"github.com/clusterinthecloud/nodectl/internal/image"
	"github.com/clusterinthecloud/nodectl/internal/netutil"
	"github.com/clusterinthecloud/nodectl/internal/scheduler"
)

// Defaults for the polling and launch-retry knobs.
const (
	DefaultPollInterval   = 5 * time.Second
	DefaultLaunchAttempts = 10
	DefaultLaunchElapsed  = 600 * time.Second
)

// Params collects the collaborators and tuning knobs for a Provisioner.
type Params struct {
	Log       logr.Logger
	Cloud     cloud.Client
	Scheduler scheduler.Scheduler
	Images    image.Catalog
	Resolver  netutil.Resolver
	Space     *config.NodeSpace

	// SSHKeys and Bootstrap are handed verbatim to every new instance.
	SSHKeys   string
	Bootstrap []byte

	// PollInterval paces the termination-drain and VNIC-attachment
	// waits. LaunchAttempts and LaunchElapsed bound the launch retry;
	// whichever triggers first wins.
	PollInterval   time.Duration
	LaunchAttempts int
	LaunchElapsed  time.Duration
}

// Provisioner orchestrates node lifecycle operations against the cloud
// provider and the cluster scheduler. It is safe for concurrent use
// across different hostnames; concurrent calls for the same hostname
// are not coordinated (see StartNode).
type Provisioner struct {
	log   logr.Logger
	cloud cloud.Client
	query cloud.Query
	sched scheduler.Scheduler
	image image.Catalog
	dns   netutil.Resolver
	space *config.NodeSpace

	sshKeys   string
	bootstrap []byte

	pollInterval   time.Duration
	launchAttempts int
	launchElapsed  time.Duration
}

// New creates a Provisioner, applying defaults for unset knobs.
func New(p Params) *Provisioner {
	if p.PollInterval <= 0 {
		p.PollInterval = DefaultPollInterval
	}
	if p.LaunchAttempts <= 0 {
		p.LaunchAttempts = DefaultLaunchAttempts
	}
	if p.LaunchElapsed <= 0 {
		p.LaunchElapsed = DefaultLaunchElapsed
	}
	return &Provisioner{
		log:            p.Log,
		cloud:          p.Cloud,
		query:          cloud.Query{Client: p.Cloud, Log: p.Log},
		sched:          p.Scheduler,
		image:          p.Images,
		dns:            p.Resolver,
		space:          p.Space,
		sshKeys:        p.SSHKeys,
		bootstrap:      p.Bootstrap,
		pollInterval:   p.PollInterval,
		launchAttempts: p.LaunchAttempts,
		launchElapsed:  p.LaunchElapsed,
	}
}
