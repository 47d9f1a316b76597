package aws

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// RunInstance launches a single compute instance and returns its ID.
func (c *RealClient) RunInstance(ctx context.Context, spec InstanceSpec) (string, error) {
	input := &ec2.RunInstancesInput{
		ImageId:          aws.String(spec.ImageID),
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		InstanceType:     ec2types.InstanceType(spec.InstanceType),
		SecurityGroupIds: []string{spec.SecurityGroupID},
		UserData:         aws.String(encodeUserData(spec.UserData)),
		TagSpecifications: []ec2types.TagSpecification{
			{
				ResourceType: ec2types.ResourceTypeInstance,
				Tags:         toEC2Tags(spec.Tags),
			},
		},
	}
	if spec.InstanceProfile != "" {
		input.IamInstanceProfile = &ec2types.IamInstanceProfileSpecification{
			Name: aws.String(spec.InstanceProfile),
		}
	}

	out, err := c.ec2.RunInstances(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to launch instance: %w", err)
	}
	if len(out.Instances) == 0 {
		return "", fmt.Errorf("launch request returned no instances")
	}
	return aws.ToString(out.Instances[0].InstanceId), nil
}

// encodeUserData base64-encodes the bootstrap script. Unlike some SDKs,
// the Go SDK does not encode user data automatically.
func encodeUserData(script string) string {
	return base64.StdEncoding.EncodeToString([]byte(script))
}

// WaitInstanceRunning blocks until the instance reaches running state or
// the timeout expires. Expiry is reported as ErrWaitTimeout so callers
// can surface it distinctly from other provider faults.
func (c *RealClient) WaitInstanceRunning(ctx context.Context, instanceID string, timeout time.Duration) error {
	waiter := ec2.NewInstanceRunningWaiter(c.ec2)
	err := waiter.Wait(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, timeout)
	if err != nil {
		if isWaiterTimeout(err) {
			return fmt.Errorf("instance %s did not reach running state within %v: %w", instanceID, timeout, ErrWaitTimeout)
		}
		return fmt.Errorf("failed waiting for instance %s: %w", instanceID, err)
	}
	return nil
}
