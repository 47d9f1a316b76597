package provisioning

import (
	_ "embed"
	"fmt"

	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

// bootstrapScript configures the instance on first boot: packages,
// firewall, web server, and a static status page. It is passed to the
// launch request verbatim.
//
//go:embed userdata.sh
var bootstrapScript string

// instanceProfileName is the IAM instance profile attached to the web
// server.
const instanceProfileName = "LabInstanceProfile"

// ComputeProvisioner launches the application's web server instance.
type ComputeProvisioner struct{}

// NewComputeProvisioner creates a new compute provisioner.
func NewComputeProvisioner() *ComputeProvisioner {
	return &ComputeProvisioner{}
}

// Name implements the Phase interface.
func (p *ComputeProvisioner) Name() string {
	return "compute"
}

// Provision launches one instance attached to the security group created
// earlier in the pipeline, then blocks until the instance is running or
// the configured timeout expires. Any fault, including the timeout, is
// fatal.
func (p *ComputeProvisioner) Provision(ctx *Context) error {
	if ctx.State.SecurityGroupID == "" {
		return fmt.Errorf("compute phase requires a security group ID from the security-group phase")
	}

	spec := platformaws.InstanceSpec{
		ImageID:         ctx.Config.AMIID,
		InstanceType:    ctx.Config.InstanceType,
		SecurityGroupID: ctx.State.SecurityGroupID,
		InstanceProfile: instanceProfileName,
		UserData:        bootstrapScript,
		Tags:            resourceTags(ctx.Config, fmt.Sprintf("%s-web", ctx.Config.AppName)),
	}

	instanceID, err := ctx.Cloud.RunInstance(ctx, spec)
	if err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}
	LogResourceCreated(ctx.Observer, p.Name(), instanceID)

	ctx.Observer.Printf("[%s] waiting up to %v for instance %s to reach running state...",
		p.Name(), ctx.Timeouts.InstanceRunning, instanceID)
	if err := ctx.Cloud.WaitInstanceRunning(ctx, instanceID, ctx.Timeouts.InstanceRunning); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}
	ctx.Observer.Printf("[%s] instance %s is running", p.Name(), instanceID)

	ctx.State.InstanceID = instanceID
	return nil
}
