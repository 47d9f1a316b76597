// Package credentials validates the required secret environment variables
// before any provisioning begins.
//
// Secret values never land in the configuration record and are never
// logged; they are read from the environment at the moment they are
// passed to a provisioning call.
package credentials

import (
	"fmt"
	"os"
	"strings"
)

// Variable represents a required environment variable.
type Variable struct {
	// Name is the environment variable name.
	Name string

	// Description explains what the variable is used for.
	Description string
}

// Required returns the environment variables that must be set before a
// deployment may start. The AWS credential pair is consumed implicitly by
// the SDK client chain; it is only existence-checked here.
func Required() []Variable {
	return []Variable{
		{Name: "RDS_ADMIN_PASSWORD", Description: "Administrator password for the RDS database"},
		{Name: "AWS_ACCESS_KEY_ID", Description: "AWS Access Key ID"},
		{Name: "AWS_SECRET_ACCESS_KEY", Description: "AWS Secret Access Key"},
	}
}

// CheckResults contains the outcome of validating the environment.
type CheckResults struct {
	Missing []Variable
}

// HasErrors returns true if any required variable is missing.
func (r *CheckResults) HasErrors() bool {
	return len(r.Missing) > 0
}

// Error returns an error listing every missing variable, or nil when the
// environment is complete. The message carries the full list so the
// operator can fix everything in one pass.
func (r *CheckResults) Error() error {
	if !r.HasErrors() {
		return nil
	}

	var b strings.Builder
	b.WriteString("the following environment variables must be set:\n")
	for _, v := range r.Missing {
		fmt.Fprintf(&b, "  - %s (%s)\n", v.Name, v.Description)
	}
	b.WriteString("\nExample:\n")
	b.WriteString("  export RDS_ADMIN_PASSWORD='your_secure_password'")
	return fmt.Errorf("%s", b.String())
}

// Check validates that every variable in vars has a non-empty value.
// All missing variables are collected; validation never stops at the
// first failure.
func Check(vars []Variable) *CheckResults {
	results := &CheckResults{}
	for _, v := range vars {
		if os.Getenv(v.Name) == "" {
			results.Missing = append(results.Missing, v)
		}
	}
	return results
}

// CheckDefault validates the default required variable set.
func CheckDefault() *CheckResults {
	return Check(Required())
}

// DatabaseAdminPassword reads the database administrator secret from the
// environment. Callers must not log the returned value.
func DatabaseAdminPassword() string {
	return os.Getenv("RDS_ADMIN_PASSWORD")
}
