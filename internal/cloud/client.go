// Package cloud provides a wrapper around the Oracle Cloud
// Infrastructure API. It abstracts the handful of instance and
// networking operations the node controller needs behind the Client
// interface so the orchestration logic can be tested against a mock.
package cloud

import (
	"context"
)

// LifecycleState is the provider-reported instance status.
type LifecycleState string

// Provider lifecycle states. The controller only distinguishes
// Terminated (absent, safe to create), Terminating (transient, must
// wait) and "anything else" (already exists).
const (
	StateProvisioning LifecycleState = "PROVISIONING"
	StateStarting     LifecycleState = "STARTING"
	StateRunning      LifecycleState = "RUNNING"
	StateStopping     LifecycleState = "STOPPING"
	StateStopped      LifecycleState = "STOPPED"
	StateTerminating  LifecycleState = "TERMINATING"
	StateTerminated   LifecycleState = "TERMINATED"
)

// Instance is the provider-side record of a compute instance. The
// display name doubles as the node hostname and is the lookup key.
type Instance struct {
	ID          string
	DisplayName string
	State       LifecycleState
}

// Attachment is a VNIC attachment binding an instance to a private IP.
type Attachment struct {
	ID     string
	VnicID string
}

// LaunchDetails is the full specification for creating one node
// instance.
type LaunchDetails struct {
	CompartmentID      string
	AvailabilityDomain string
	Shape              string
	SubnetID           string
	ImageID            string
	DisplayName        string
	HostnameLabel      string

	// PrivateIP pins the instance to a static address when the cluster
	// already knows one; empty means the provider assigns dynamically.
	PrivateIP string

	// SSHKeys and UserData are opaque blobs placed in instance metadata.
	// UserData must already be base64 encoded for transport.
	SSHKeys  string
	UserData string
}

// Client defines the provider operations used by the node controller.
type Client interface {
	// ListInstances lists instances in a compartment filtered by display
	// name. All lifecycle states are included.
	ListInstances(ctx context.Context, compartmentID, displayName string) ([]Instance, error)

	// LaunchInstance creates a new instance.
	LaunchInstance(ctx context.Context, details LaunchDetails) (Instance, error)

	// TerminateInstance terminates the instance with the given ID.
	TerminateInstance(ctx context.Context, instanceID string) error

	// ListAttachments lists the VNIC attachments of an instance.
	// Attachments whose VNIC is not yet materialized are omitted.
	ListAttachments(ctx context.Context, compartmentID, instanceID string) ([]Attachment, error)

	// VnicPrivateIP resolves the private IP bound to a VNIC.
	VnicPrivateIP(ctx context.Context, vnicID string) (string, error)

	// PrivateSubnet returns the ID of the subnet named "Private" within
	// the given compartment and VCN.
	PrivateSubnet(ctx context.Context, compartmentID, vcnID string) (string, error)
}
