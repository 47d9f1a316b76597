// Package aws wraps the AWS control-plane APIs used by the deployment.
//
// The wrappers expose primitive operations only; the ensure/recovery
// policy around them (idempotent-on-conflict, abort-on-fault) lives in
// the provisioners. This keeps the fault-code branching testable with a
// mock client.
package aws

import (
	"context"
	"time"
)

// IngressRule describes one inbound permission for a security group.
type IngressRule struct {
	Protocol    string
	Port        int32
	CIDR        string
	Description string
}

// InstanceSpec describes a single compute instance launch request.
type InstanceSpec struct {
	ImageID         string
	InstanceType    string
	SecurityGroupID string
	InstanceProfile string
	// UserData is the plain-text bootstrap script. It is passed through
	// verbatim; the client only base64-encodes it for the wire.
	UserData string
	Tags     map[string]string
}

// DatabaseSpec describes a managed database instance creation request.
type DatabaseSpec struct {
	Identifier          string
	AllocatedStorage    int32
	InstanceClass       string
	Engine              string
	EngineVersion       string
	DatabaseName        string
	MasterUsername      string
	MasterPassword      string
	PubliclyAccessible  bool
	StorageEncrypted    bool
	KMSKeyID            string
	BackupRetentionDays int32
	Tags                map[string]string
}

// NetworkRuleManager defines the interface for managing security groups.
type NetworkRuleManager interface {
	// CreateSecurityGroup creates a new security group and returns its ID.
	CreateSecurityGroup(ctx context.Context, name, description string, tags map[string]string) (string, error)

	// AuthorizeIngress attaches inbound rules to an existing security group.
	AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error

	// LookupSecurityGroup returns the ID of the security group with the
	// given name.
	LookupSecurityGroup(ctx context.Context, name string) (string, error)
}

// BackupStoreManager defines the interface for configuring the backup bucket.
type BackupStoreManager interface {
	// CreateBucket creates a new bucket in the client's region.
	CreateBucket(ctx context.Context, name string) error

	// EnableBucketEncryption enables server-side encryption at rest.
	EnableBucketEncryption(ctx context.Context, name string) error

	// EnableBucketVersioning enables object versioning.
	EnableBucketVersioning(ctx context.Context, name string) error

	// BlockBucketPublicAccess blocks every public access path.
	BlockBucketPublicAccess(ctx context.Context, name string) error

	// TagBucket applies the given tags to the bucket.
	TagBucket(ctx context.Context, name string, tags map[string]string) error
}

// ComputeManager defines the interface for launching compute instances.
type ComputeManager interface {
	// RunInstance launches a single instance and returns its ID.
	RunInstance(ctx context.Context, spec InstanceSpec) (string, error)

	// WaitInstanceRunning blocks until the instance reaches running state
	// or the timeout expires. A timeout surfaces as ErrWaitTimeout.
	WaitInstanceRunning(ctx context.Context, instanceID string, timeout time.Duration) error
}

// DatabaseManager defines the interface for creating managed databases.
type DatabaseManager interface {
	// CreateDatabase creates a managed database instance and returns its
	// identifier.
	CreateDatabase(ctx context.Context, spec DatabaseSpec) (string, error)
}

// CloudManager aggregates every control-plane capability the deployment
// needs. RealClient implements it against AWS; MockClient implements it
// for tests.
type CloudManager interface {
	NetworkRuleManager
	BackupStoreManager
	ComputeManager
	DatabaseManager
}
