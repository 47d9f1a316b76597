package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// CreateSecurityGroup creates a new security group and returns its ID.
// A duplicate-name fault is returned unmodified in the error chain so
// callers can recognize it with IsDuplicateSecurityGroup.
func (c *RealClient) CreateSecurityGroup(ctx context.Context, name, description string, tags map[string]string) (string, error) {
	out, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(description),
		TagSpecifications: []ec2types.TagSpecification{
			{
				ResourceType: ec2types.ResourceTypeSecurityGroup,
				Tags:         toEC2Tags(tags),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create security group %s: %w", name, err)
	}
	return aws.ToString(out.GroupId), nil
}

// AuthorizeIngress attaches the given inbound rules to the security group.
func (c *RealClient) AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error {
	permissions := make([]ec2types.IpPermission, 0, len(rules))
	for _, rule := range rules {
		permissions = append(permissions, ec2types.IpPermission{
			IpProtocol: aws.String(rule.Protocol),
			FromPort:   aws.Int32(rule.Port),
			ToPort:     aws.Int32(rule.Port),
			IpRanges: []ec2types.IpRange{
				{
					CidrIp:      aws.String(rule.CIDR),
					Description: aws.String(rule.Description),
				},
			},
		})
	}

	_, err := c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(groupID),
		IpPermissions: permissions,
	})
	if err != nil {
		return fmt.Errorf("failed to authorize ingress for %s: %w", groupID, err)
	}
	return nil
}

// LookupSecurityGroup returns the ID of the security group with the given
// name.
func (c *RealClient) LookupSecurityGroup(ctx context.Context, name string) (string, error) {
	out, err := c.ec2.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		GroupNames: []string{name},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe security group %s: %w", name, err)
	}
	if len(out.SecurityGroups) == 0 {
		return "", fmt.Errorf("security group not found: %s", name)
	}
	return aws.ToString(out.SecurityGroups[0].GroupId), nil
}

func toEC2Tags(tags map[string]string) []ec2types.Tag {
	result := make([]ec2types.Tag, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		result = append(result, ec2types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return result
}
