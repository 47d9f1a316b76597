package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// CreateBucket creates a new bucket in the client's region.
func (c *RealClient) CreateBucket(ctx context.Context, name string) error {
	_, err := c.s3.CreateBucket(ctx, newCreateBucketInput(name, c.region))
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return nil
}

// newCreateBucketInput builds the creation request for a bucket.
// us-east-1 is the one region that must not carry a LocationConstraint;
// every other region requires one.
func newCreateBucketInput(name, region string) *s3.CreateBucketInput {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(name),
	}
	if region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(region),
		}
	}
	return input
}

// EnableBucketEncryption enables AES256 server-side encryption at rest.
func (c *RealClient) EnableBucketEncryption(ctx context.Context, name string) error {
	_, err := c.s3.PutBucketEncryption(ctx, &s3.PutBucketEncryptionInput{
		Bucket: aws.String(name),
		ServerSideEncryptionConfiguration: &s3types.ServerSideEncryptionConfiguration{
			Rules: []s3types.ServerSideEncryptionRule{
				{
					ApplyServerSideEncryptionByDefault: &s3types.ServerSideEncryptionByDefault{
						SSEAlgorithm: s3types.ServerSideEncryptionAes256,
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable encryption on bucket %s: %w", name, err)
	}
	return nil
}

// EnableBucketVersioning enables object versioning.
func (c *RealClient) EnableBucketVersioning(ctx context.Context, name string) error {
	_, err := c.s3.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(name),
		VersioningConfiguration: &s3types.VersioningConfiguration{
			Status: s3types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable versioning on bucket %s: %w", name, err)
	}
	return nil
}

// BlockBucketPublicAccess blocks every public access path to the bucket.
func (c *RealClient) BlockBucketPublicAccess(ctx context.Context, name string) error {
	_, err := c.s3.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(name),
		PublicAccessBlockConfiguration: &s3types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(true),
			IgnorePublicAcls:      aws.Bool(true),
			BlockPublicPolicy:     aws.Bool(true),
			RestrictPublicBuckets: aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to block public access on bucket %s: %w", name, err)
	}
	return nil
}

// TagBucket applies the given tags to the bucket.
func (c *RealClient) TagBucket(ctx context.Context, name string, tags map[string]string) error {
	tagSet := make([]s3types.Tag, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		tagSet = append(tagSet, s3types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}

	_, err := c.s3.PutBucketTagging(ctx, &s3.PutBucketTaggingInput{
		Bucket:  aws.String(name),
		Tagging: &s3types.Tagging{TagSet: tagSet},
	})
	if err != nil {
		return fmt.Errorf("failed to tag bucket %s: %w", name, err)
	}
	return nil
}
