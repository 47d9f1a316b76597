package provisioning

import (
	"github.com/imamik/hrdeploy/internal/credentials"
	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
)

// Database engine settings for the employee data store.
const (
	databaseEngine        = "mysql"
	databaseEngineVersion = "8.0"
	databaseName          = "rh_database"
	databaseMasterUser    = "admin"
	databaseKMSKey        = "alias/aws/rds"
	backupRetentionDays   = 7
)

// DatabaseProvisioner creates the managed database instance holding
// employee records.
type DatabaseProvisioner struct{}

// NewDatabaseProvisioner creates a new database provisioner.
func NewDatabaseProvisioner() *DatabaseProvisioner {
	return &DatabaseProvisioner{}
}

// Name implements the Phase interface.
func (p *DatabaseProvisioner) Name() string {
	return "database"
}

// Provision creates the database instance: privately networked, encrypted
// at rest with the provider-managed key, 7-day backup retention. An
// already-exists fault is treated as success and logged as a warning;
// every other fault is fatal. The administrator secret is read from the
// environment at call time and never logged.
func (p *DatabaseProvisioner) Provision(ctx *Context) error {
	identifier := ctx.Config.DatabaseIdentifier()

	tags := resourceTags(ctx.Config, identifier)
	tags["ContainsSensitiveData"] = "true"

	spec := platformaws.DatabaseSpec{
		Identifier:          identifier,
		AllocatedStorage:    ctx.Config.DBAllocatedStorage,
		InstanceClass:       ctx.Config.DBInstanceClass,
		Engine:              databaseEngine,
		EngineVersion:       databaseEngineVersion,
		DatabaseName:        databaseName,
		MasterUsername:      databaseMasterUser,
		MasterPassword:      credentials.DatabaseAdminPassword(),
		PubliclyAccessible:  false,
		StorageEncrypted:    true,
		KMSKeyID:            databaseKMSKey,
		BackupRetentionDays: backupRetentionDays,
		Tags:                tags,
	}

	if _, err := ctx.Cloud.CreateDatabase(ctx, spec); err != nil {
		if platformaws.IsDatabaseAlreadyExists(err) {
			LogResourceExists(ctx.Observer, p.Name(), identifier)
			ctx.State.DatabaseID = identifier
			return nil
		}
		LogResourceFailed(ctx.Observer, p.Name(), err)
		return err
	}

	LogResourceCreated(ctx.Observer, p.Name(), identifier)
	ctx.Observer.Printf("[%s]   - encryption at rest: enabled", p.Name())
	ctx.Observer.Printf("[%s]   - public access: disabled", p.Name())
	ctx.Observer.Printf("[%s]   - backup retention: %d days", p.Name(), backupRetentionDays)

	ctx.State.DatabaseID = identifier
	return nil
}
