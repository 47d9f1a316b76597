package provisioning

import (
	"context"

	"github.com/imamik/hrdeploy/internal/config"
	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

// Resource is one provisioned resource, identified by kind and the
// provider-assigned identifier.
type Resource struct {
	Kind string
	ID   string
}

// Resource kind labels, in pipeline order.
const (
	KindSecurityGroup = "security_group"
	KindBackupBucket  = "s3_bucket"
	KindInstance      = "ec2_instance"
	KindDatabase      = "rds_instance"
)

// State holds the identifiers produced by completed phases.
// It is progressively populated as each phase succeeds and is owned
// exclusively by one deployment run.
type State struct {
	SecurityGroupID string
	BucketName      string
	InstanceID      string
	DatabaseID      string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Resources returns the provisioned resources in pipeline order,
// containing only the phases that completed. Used for the final summary
// and for the partial-result report after a failure.
func (s *State) Resources() []Resource {
	var resources []Resource
	if s.SecurityGroupID != "" {
		resources = append(resources, Resource{Kind: KindSecurityGroup, ID: s.SecurityGroupID})
	}
	if s.BucketName != "" {
		resources = append(resources, Resource{Kind: KindBackupBucket, ID: s.BucketName})
	}
	if s.InstanceID != "" {
		resources = append(resources, Resource{Kind: KindInstance, ID: s.InstanceID})
	}
	if s.DatabaseID != "" {
		resources = append(resources, Resource{Kind: KindDatabase, ID: s.DatabaseID})
	}
	return resources
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Cloud    platformaws.CloudManager
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, cloud platformaws.CloudManager) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Cloud:    cloud,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
