package cloud

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// RealClient implements Client using the OCI API.
type RealClient struct {
	compute core.ComputeClient
	network core.VirtualNetworkClient
}

var _ Client = (*RealClient)(nil)

// NewRealClient creates a Client from the standard OCI configuration
// file (~/.oci/config or OCI_CONFIG_FILE).
func NewRealClient() (*RealClient, error) {
	return NewRealClientWithProvider(common.DefaultConfigProvider())
}

// NewRealClientWithProvider creates a Client from an explicit OCI
// configuration provider.
func NewRealClientWithProvider(provider common.ConfigurationProvider) (*RealClient, error) {
	compute, err := core.NewComputeClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	network, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client: %w", err)
	}
	return &RealClient{compute: compute, network: network}, nil
}

// ListInstances lists instances in a compartment by display name.
func (c *RealClient) ListInstances(ctx context.Context, compartmentID, displayName string) ([]Instance, error) {
	resp, err := c.compute.ListInstances(ctx, core.ListInstancesRequest{
		CompartmentId: common.String(compartmentID),
		DisplayName:   common.String(displayName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	instances := make([]Instance, 0, len(resp.Items))
	for _, item := range resp.Items {
		instances = append(instances, Instance{
			ID:          deref(item.Id),
			DisplayName: deref(item.DisplayName),
			State:       LifecycleState(item.LifecycleState),
		})
	}
	return instances, nil
}

// LaunchInstance creates a new instance.
func (c *RealClient) LaunchInstance(ctx context.Context, details LaunchDetails) (Instance, error) {
	launch := core.LaunchInstanceDetails{
		CompartmentId:      common.String(details.CompartmentID),
		AvailabilityDomain: common.String(details.AvailabilityDomain),
		Shape:              common.String(details.Shape),
		SubnetId:           common.String(details.SubnetID),
		ImageId:            common.String(details.ImageID),
		DisplayName:        common.String(details.DisplayName),
		HostnameLabel:      common.String(details.HostnameLabel),
		Metadata: map[string]string{
			"ssh_authorized_keys": details.SSHKeys,
			"user_data":           details.UserData,
		},
	}
	if details.PrivateIP != "" {
		launch.CreateVnicDetails = &core.CreateVnicDetails{
			PrivateIp: common.String(details.PrivateIP),
			SubnetId:  common.String(details.SubnetID),
		}
	}

	resp, err := c.compute.LaunchInstance(ctx, core.LaunchInstanceRequest{
		LaunchInstanceDetails: launch,
	})
	if err != nil {
		return Instance{}, fmt.Errorf("failed to launch instance: %w", err)
	}

	return Instance{
		ID:          deref(resp.Instance.Id),
		DisplayName: deref(resp.Instance.DisplayName),
		State:       LifecycleState(resp.Instance.LifecycleState),
	}, nil
}

// TerminateInstance terminates the instance with the given ID.
func (c *RealClient) TerminateInstance(ctx context.Context, instanceID string) error {
	_, err := c.compute.TerminateInstance(ctx, core.TerminateInstanceRequest{
		InstanceId: common.String(instanceID),
	})
	if err != nil {
		return fmt.Errorf("failed to terminate instance: %w", err)
	}
	return nil
}

// ListAttachments lists materialized VNIC attachments of an instance.
func (c *RealClient) ListAttachments(ctx context.Context, compartmentID, instanceID string) ([]Attachment, error) {
	resp, err := c.compute.ListVnicAttachments(ctx, core.ListVnicAttachmentsRequest{
		CompartmentId: common.String(compartmentID),
		InstanceId:    common.String(instanceID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vnic attachments: %w", err)
	}

	attachments := make([]Attachment, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.VnicId == nil {
			// Attachment exists but the VNIC itself is still provisioning.
			continue
		}
		attachments = append(attachments, Attachment{
			ID:     deref(item.Id),
			VnicID: deref(item.VnicId),
		})
	}
	return attachments, nil
}

// VnicPrivateIP resolves the private IP bound to a VNIC.
func (c *RealClient) VnicPrivateIP(ctx context.Context, vnicID string) (string, error) {
	resp, err := c.network.GetVnic(ctx, core.GetVnicRequest{
		VnicId: common.String(vnicID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get vnic: %w", err)
	}
	return deref(resp.Vnic.PrivateIp), nil
}

// PrivateSubnet returns the subnet named "Private" in the given
// compartment and VCN.
func (c *RealClient) PrivateSubnet(ctx context.Context, compartmentID, vcnID string) (string, error) {
	resp, err := c.network.ListSubnets(ctx, core.ListSubnetsRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         common.String(vcnID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list subnets: %w", err)
	}

	for _, subnet := range resp.Items {
		if deref(subnet.DisplayName) == "Private" {
			return deref(subnet.Id), nil
		}
	}
	return "", fmt.Errorf("no subnet named %q in vcn %s", "Private", vcnID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
