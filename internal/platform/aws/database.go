package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// CreateDatabase creates a managed database instance and returns its
// identifier. An already-exists fault is returned unmodified in the error
// chain so callers can recognize it with IsDatabaseAlreadyExists.
func (c *RealClient) CreateDatabase(ctx context.Context, spec DatabaseSpec) (string, error) {
	input := &rds.CreateDBInstanceInput{
		DBInstanceIdentifier:  aws.String(spec.Identifier),
		AllocatedStorage:      aws.Int32(spec.AllocatedStorage),
		DBInstanceClass:       aws.String(spec.InstanceClass),
		Engine:                aws.String(spec.Engine),
		EngineVersion:         aws.String(spec.EngineVersion),
		DBName:                aws.String(spec.DatabaseName),
		MasterUsername:        aws.String(spec.MasterUsername),
		MasterUserPassword:    aws.String(spec.MasterPassword),
		PubliclyAccessible:    aws.Bool(spec.PubliclyAccessible),
		BackupRetentionPeriod: aws.Int32(spec.BackupRetentionDays),
		StorageEncrypted:      aws.Bool(spec.StorageEncrypted),
		// The security-group attachment is intentionally left empty at
		// creation time; associating the database with the application's
		// network rules is a separate follow-up step.
		VpcSecurityGroupIds: []string{},
		Tags:                toRDSTags(spec.Tags),
	}
	if spec.KMSKeyID != "" {
		input.KmsKeyId = aws.String(spec.KMSKeyID)
	}

	out, err := c.rds.CreateDBInstance(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to create database %s: %w", spec.Identifier, err)
	}
	return aws.ToString(out.DBInstance.DBInstanceIdentifier), nil
}

func toRDSTags(tags map[string]string) []rdstypes.Tag {
	result := make([]rdstypes.Tag, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		result = append(result, rdstypes.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return result
}
