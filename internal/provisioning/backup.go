package provisioning

import (
	"fmt"
	"time"
)

// timeNow is swappable in tests to pin the bucket-name timestamp.
var timeNow = time.Now

// BackupBucketProvisioner creates the encrypted, versioned, publicly
// blocked bucket for application backups.
type BackupBucketProvisioner struct{}

// NewBackupBucketProvisioner creates a new backup bucket provisioner.
func NewBackupBucketProvisioner() *BackupBucketProvisioner {
	return &BackupBucketProvisioner{}
}

// Name implements the Phase interface.
func (p *BackupBucketProvisioner) Name() string {
	return "backup-bucket"
}

// Provision creates the bucket and applies its full configuration.
// The name carries a creation timestamp, so collisions are not handled;
// any fault in any of the five calls is fatal and no partially configured
// bucket is cleaned up.
func (p *BackupBucketProvisioner) Provision(ctx *Context) error {
	name := fmt.Sprintf("%s-backups-%d", ctx.Config.AppName, timeNow().Unix())

	if err := ctx.Cloud.CreateBucket(ctx, name); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	if err := ctx.Cloud.EnableBucketEncryption(ctx, name); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	if err := ctx.Cloud.EnableBucketVersioning(ctx, name); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	if err := ctx.Cloud.BlockBucketPublicAccess(ctx, name); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	tags := resourceTags(ctx.Config, name)
	tags["Purpose"] = "Backups"
	if err := ctx.Cloud.TagBucket(ctx, name, tags); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	LogResourceCreated(ctx.Observer, p.Name(), name)
	ctx.State.BucketName = name
	return nil
}
