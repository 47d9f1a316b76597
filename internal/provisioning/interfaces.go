// Package provisioning contains the deployment pipeline for the HR
// application's infrastructure.
//
// The pipeline is a fixed sequence of four phases — security group,
// backup bucket, compute instance, database — executed strictly in
// order. Each phase either records its resource in the shared State or
// fails the whole deployment; previously created resources are never
// rolled back, they are reported so the operator can clean up manually.
package provisioning

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}
