package aws

import (
	"context"
	"fmt"
	"sort"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// RealClient implements CloudManager using the AWS SDK.
type RealClient struct {
	ec2    *ec2.Client
	s3     *s3.Client
	rds    *rds.Client
	region string
}

// NewRealClient creates a client for the given region. Credentials are
// resolved through the SDK default chain, which reads the environment
// variables validated at startup.
func NewRealClient(ctx context.Context, region string) (*RealClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &RealClient{
		ec2:    ec2.NewFromConfig(cfg),
		s3:     s3.NewFromConfig(cfg),
		rds:    rds.NewFromConfig(cfg),
		region: region,
	}, nil
}

// sortedKeys returns the map keys in a stable order so tag lists in API
// requests are deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
