package scheduler

import "context"

// Mock is a mock implementation of Scheduler.
type Mock struct {
	NodeFeaturesFunc   func(ctx context.Context, hostname string) (string, error)
	NodeAddressFunc    func(ctx context.Context, hostname string) (string, error)
	SetNodeAddressFunc func(ctx context.Context, hostname, address string) error
}

var _ Scheduler = (*Mock)(nil)

// NodeFeatures mocks the feature-tag query.
func (m *Mock) NodeFeatures(ctx context.Context, hostname string) (string, error) {
	if m.NodeFeaturesFunc != nil {
		return m.NodeFeaturesFunc(ctx, hostname)
	}
	return "shape=VM.Standard2.1,ad=1", nil
}

// NodeAddress mocks the stored-address query.
func (m *Mock) NodeAddress(ctx context.Context, hostname string) (string, error) {
	if m.NodeAddressFunc != nil {
		return m.NodeAddressFunc(ctx, hostname)
	}
	return "", nil
}

// SetNodeAddress mocks the address update.
func (m *Mock) SetNodeAddress(ctx context.Context, hostname, address string) error {
	if m.SetNodeAddressFunc != nil {
		return m.SetNodeAddressFunc(ctx, hostname, address)
	}
	return nil
}
