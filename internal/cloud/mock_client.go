package cloud

import "context"

// MockClient is a mock implementation of Client.
type MockClient struct {
	ListInstancesFunc     func(ctx context.Context, compartmentID, displayName string) ([]Instance, error)
	LaunchInstanceFunc    func(ctx context.Context, details LaunchDetails) (Instance, error)
	TerminateInstanceFunc func(ctx context.Context, instanceID string) error
	ListAttachmentsFunc   func(ctx context.Context, compartmentID, instanceID string) ([]Attachment, error)
	VnicPrivateIPFunc     func(ctx context.Context, vnicID string) (string, error)
	PrivateSubnetFunc     func(ctx context.Context, compartmentID, vcnID string) (string, error)
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// ListInstances mocks instance listing.
func (m *MockClient) ListInstances(ctx context.Context, compartmentID, displayName string) ([]Instance, error) {
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, compartmentID, displayName)
	}
	return nil, nil
}

// LaunchInstance mocks instance creation.
func (m *MockClient) LaunchInstance(ctx context.Context, details LaunchDetails) (Instance, error) {
	if m.LaunchInstanceFunc != nil {
		return m.LaunchInstanceFunc(ctx, details)
	}
	return Instance{ID: "ocid1.instance.mock", DisplayName: details.DisplayName, State: StateProvisioning}, nil
}

// TerminateInstance mocks instance termination.
func (m *MockClient) TerminateInstance(ctx context.Context, instanceID string) error {
	if m.TerminateInstanceFunc != nil {
		return m.TerminateInstanceFunc(ctx, instanceID)
	}
	return nil
}

// ListAttachments mocks VNIC attachment listing.
func (m *MockClient) ListAttachments(ctx context.Context, compartmentID, instanceID string) ([]Attachment, error) {
	if m.ListAttachmentsFunc != nil {
		return m.ListAttachmentsFunc(ctx, compartmentID, instanceID)
	}
	return []Attachment{{ID: "ocid1.vnicattachment.mock", VnicID: "ocid1.vnic.mock"}}, nil
}

// VnicPrivateIP mocks private IP resolution.
func (m *MockClient) VnicPrivateIP(ctx context.Context, vnicID string) (string, error) {
	if m.VnicPrivateIPFunc != nil {
		return m.VnicPrivateIPFunc(ctx, vnicID)
	}
	return "10.1.0.2", nil
}

// PrivateSubnet mocks private subnet lookup.
func (m *MockClient) PrivateSubnet(ctx context.Context, compartmentID, vcnID string) (string, error) {
	if m.PrivateSubnetFunc != nil {
		return m.PrivateSubnetFunc(ctx, compartmentID, vcnID)
	}
	return "ocid1.subnet.mock", nil
}
