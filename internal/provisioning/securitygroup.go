package provisioning

import (
	"fmt"

	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

// ingressRules returns the fixed inbound permissions for the application:
// encrypted web traffic and remote administration, from any source.
// Production deployments should restrict the source ranges afterwards.
func ingressRules() []platformaws.IngressRule {
	return []platformaws.IngressRule{
		{Protocol: "tcp", Port: 443, CIDR: "0.0.0.0/0", Description: "HTTPS from internet"},
		{Protocol: "tcp", Port: 22, CIDR: "0.0.0.0/0", Description: "SSH for administration"},
	}
}

// SecurityGroupProvisioner ensures the application's security group
// exists with the required ingress rules.
type SecurityGroupProvisioner struct{}

// NewSecurityGroupProvisioner creates a new security group provisioner.
func NewSecurityGroupProvisioner() *SecurityGroupProvisioner {
	return &SecurityGroupProvisioner{}
}

// Name implements the Phase interface.
func (p *SecurityGroupProvisioner) Name() string {
	return "security-group"
}

// Provision creates the security group and attaches its ingress rules.
// A duplicate-name fault is the one recovered condition: the existing
// group is looked up by name and adopted as-is. Every other fault is
// fatal.
func (p *SecurityGroupProvisioner) Provision(ctx *Context) error {
	name := ctx.Config.SecurityGroupName()
	description := fmt.Sprintf("Security group for the HR application - %s", ctx.Config.Environment)

	tags := resourceTags(ctx.Config, name)

	groupID, err := ctx.Cloud.CreateSecurityGroup(ctx, name, description, tags)
	if err != nil {
		if platformaws.IsDuplicateSecurityGroup(err) {
			existingID, lookupErr := ctx.Cloud.LookupSecurityGroup(ctx, name)
			if lookupErr != nil {
				LogResourceFailed(ctx.Observer, p.Name(), lookupErr)
				return fmt.Errorf("security group %s exists but lookup failed: %w", name, lookupErr)
			}
			LogResourceExists(ctx.Observer, p.Name(), existingID)
			ctx.State.SecurityGroupID = existingID
			return nil
		}
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	if err := ctx.Cloud.AuthorizeIngress(ctx, groupID, ingressRules()); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	LogResourceCreated(ctx.Observer, p.Name(), groupID)
	ctx.State.SecurityGroupID = groupID
	return nil
}
