package aws

import (
	"context"
	"errors"
	"strings"

	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/smithy-go"
)

// ErrWaitTimeout indicates a bounded wait for a resource state expired.
var ErrWaitTimeout = errors.New("timed out waiting for resource state")

// IsDuplicateSecurityGroup reports whether the error is the provider's
// duplicate-group fault. This is the only security-group fault that is
// recovered from; everything else is fatal.
func IsDuplicateSecurityGroup(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "InvalidGroup.Duplicate"
	}
	return false
}

// IsDatabaseAlreadyExists reports whether the error is the provider's
// already-exists fault for a database instance.
func IsDatabaseAlreadyExists(err error) bool {
	if err == nil {
		return false
	}

	// Check for the typed RDS error first
	var exists *rdstypes.DBInstanceAlreadyExistsFault
	if errors.As(err, &exists) {
		return true
	}

	// Fall back to API error code checking
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "DBInstanceAlreadyExists" || code == "DBInstanceAlreadyExistsFault"
	}

	return false
}

// isWaiterTimeout reports whether the error came from a waiter giving up,
// either through its max-wait budget or a context deadline.
func isWaiterTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "exceeded max wait time")
}
