package aws

import (
	"context"
	"time"
)

// MockClient is a mock implementation of CloudManager.
// Each operation delegates to the corresponding Func field when set and
// returns zero values otherwise.
type MockClient struct {
	CreateSecurityGroupFunc func(ctx context.Context, name, description string, tags map[string]string) (string, error)
	AuthorizeIngressFunc    func(ctx context.Context, groupID string, rules []IngressRule) error
	LookupSecurityGroupFunc func(ctx context.Context, name string) (string, error)

	CreateBucketFunc            func(ctx context.Context, name string) error
	EnableBucketEncryptionFunc  func(ctx context.Context, name string) error
	EnableBucketVersioningFunc  func(ctx context.Context, name string) error
	BlockBucketPublicAccessFunc func(ctx context.Context, name string) error
	TagBucketFunc               func(ctx context.Context, name string, tags map[string]string) error

	RunInstanceFunc         func(ctx context.Context, spec InstanceSpec) (string, error)
	WaitInstanceRunningFunc func(ctx context.Context, instanceID string, timeout time.Duration) error

	CreateDatabaseFunc func(ctx context.Context, spec DatabaseSpec) (string, error)
}

// CreateSecurityGroup implements NetworkRuleManager.
func (m *MockClient) CreateSecurityGroup(ctx context.Context, name, description string, tags map[string]string) (string, error) {
	if m.CreateSecurityGroupFunc != nil {
		return m.CreateSecurityGroupFunc(ctx, name, description, tags)
	}
	return "", nil
}

// AuthorizeIngress implements NetworkRuleManager.
func (m *MockClient) AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error {
	if m.AuthorizeIngressFunc != nil {
		return m.AuthorizeIngressFunc(ctx, groupID, rules)
	}
	return nil
}

// LookupSecurityGroup implements NetworkRuleManager.
func (m *MockClient) LookupSecurityGroup(ctx context.Context, name string) (string, error) {
	if m.LookupSecurityGroupFunc != nil {
		return m.LookupSecurityGroupFunc(ctx, name)
	}
	return "", nil
}

// CreateBucket implements BackupStoreManager.
func (m *MockClient) CreateBucket(ctx context.Context, name string) error {
	if m.CreateBucketFunc != nil {
		return m.CreateBucketFunc(ctx, name)
	}
	return nil
}

// EnableBucketEncryption implements BackupStoreManager.
func (m *MockClient) EnableBucketEncryption(ctx context.Context, name string) error {
	if m.EnableBucketEncryptionFunc != nil {
		return m.EnableBucketEncryptionFunc(ctx, name)
	}
	return nil
}

// EnableBucketVersioning implements BackupStoreManager.
func (m *MockClient) EnableBucketVersioning(ctx context.Context, name string) error {
	if m.EnableBucketVersioningFunc != nil {
		return m.EnableBucketVersioningFunc(ctx, name)
	}
	return nil
}

// BlockBucketPublicAccess implements BackupStoreManager.
func (m *MockClient) BlockBucketPublicAccess(ctx context.Context, name string) error {
	if m.BlockBucketPublicAccessFunc != nil {
		return m.BlockBucketPublicAccessFunc(ctx, name)
	}
	return nil
}

// TagBucket implements BackupStoreManager.
func (m *MockClient) TagBucket(ctx context.Context, name string, tags map[string]string) error {
	if m.TagBucketFunc != nil {
		return m.TagBucketFunc(ctx, name, tags)
	}
	return nil
}

// RunInstance implements ComputeManager.
func (m *MockClient) RunInstance(ctx context.Context, spec InstanceSpec) (string, error) {
	if m.RunInstanceFunc != nil {
		return m.RunInstanceFunc(ctx, spec)
	}
	return "", nil
}

// WaitInstanceRunning implements ComputeManager.
func (m *MockClient) WaitInstanceRunning(ctx context.Context, instanceID string, timeout time.Duration) error {
	if m.WaitInstanceRunningFunc != nil {
		return m.WaitInstanceRunningFunc(ctx, instanceID, timeout)
	}
	return nil
}

// CreateDatabase implements DatabaseManager.
func (m *MockClient) CreateDatabase(ctx context.Context, spec DatabaseSpec) (string, error) {
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx, spec)
	}
	return "", nil
}
