package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"

	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
)

func TestIsDuplicateSecurityGroup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{
			"duplicate group code",
			&smithy.GenericAPIError{Code: "InvalidGroup.Duplicate", Message: "already exists"},
			true,
		},
		{
			"wrapped duplicate group code",
			fmt.Errorf("failed to create security group: %w",
				&smithy.GenericAPIError{Code: "InvalidGroup.Duplicate"}),
			true,
		},
		{
			"unrelated API fault",
			&smithy.GenericAPIError{Code: "UnauthorizedOperation"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDuplicateSecurityGroup(tt.err)
			if got != tt.want {
				t.Errorf("IsDuplicateSecurityGroup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDatabaseAlreadyExists(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{
			"typed fault",
			&rdstypes.DBInstanceAlreadyExistsFault{},
			true,
		},
		{
			"wrapped typed fault",
			fmt.Errorf("failed to create database: %w", &rdstypes.DBInstanceAlreadyExistsFault{}),
			true,
		},
		{
			"code fallback",
			&smithy.GenericAPIError{Code: "DBInstanceAlreadyExists"},
			true,
		},
		{
			"unrelated API fault",
			&smithy.GenericAPIError{Code: "DBInstanceQuotaExceeded"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDatabaseAlreadyExists(tt.err)
			if got != tt.want {
				t.Errorf("IsDatabaseAlreadyExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWaiterTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded), true},
		{"waiter budget", errors.New("exceeded max wait time for InstanceRunning waiter"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isWaiterTimeout(tt.err)
			if got != tt.want {
				t.Errorf("isWaiterTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
