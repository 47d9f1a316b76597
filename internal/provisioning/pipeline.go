package provisioning

import (
	"fmt"
	"time"
)

// DefaultPhases returns the deployment phases in their fixed execution
// order. The compute phase depends on the security-group phase's result;
// nothing else shares state.
func DefaultPhases() []Phase {
	return []Phase{
		NewSecurityGroupProvisioner(),
		NewBackupBucketProvisioner(),
		NewComputeProvisioner(),
		NewDatabaseProvisioner(),
	}
}

// RunPhases executes all provisioning phases sequentially. The first
// failing phase aborts the run; completed phases are never rolled back.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting deployment with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Printf("[%s] starting", name)

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Printf("[%s] failed: %v", name, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Observer.Printf("Deployment completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
