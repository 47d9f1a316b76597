// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and can be tested independently of
// the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/imamik/hrdeploy/internal/config"
	"github.com/imamik/hrdeploy/internal/credentials"
	platformaws "github.com/imamik/hrdeploy/internal/platform/aws"
	"github.com/imamik/hrdeploy/internal/provisioning"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads the configuration from a file.
	loadConfigFile = config.LoadFile

	// checkCredentials validates the required environment variables.
	checkCredentials = credentials.CheckDefault

	// newCloudClient creates the AWS client set.
	newCloudClient = func(ctx context.Context, region string) (platformaws.CloudManager, error) {
		return platformaws.NewRealClient(ctx, region)
	}

	// deployPhases returns the provisioning phases to run.
	deployPhases = provisioning.DefaultPhases

	// stderr is the failure output stream.
	stderr = os.Stderr
)

// Deploy provisions the HR application's AWS infrastructure.
//
// The workflow is strictly sequential:
//  1. Load configuration (defaults, optionally overlaid with a JSON file)
//  2. Validate the required environment variables, reporting every
//     missing one before touching any provider API
//  3. Provision security group, backup bucket, compute instance and
//     database in fixed order
//
// On any provisioning fault the remaining steps are skipped, the
// resources created so far are listed so the operator can clean up
// manually, and the error is returned. Nothing is rolled back.
func Deploy(ctx context.Context, configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}

	if err := checkCredentials().Error(); err != nil {
		return err
	}

	cloud, err := newCloudClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	printBanner(cfg)

	pctx := provisioning.NewContext(ctx, cfg, cloud)
	if err := provisioning.RunPhases(pctx, deployPhases()); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "\nDeployment cancelled by the operator; in-flight provider calls may still complete")
		}
		reportPartialResources(pctx.State)
		return err
	}

	fmt.Println(renderDeploySummary(cfg, pctx.State))
	return nil
}

// printBanner announces the deployment parameters. Secrets are never
// part of the configuration record, so the banner cannot leak them.
func printBanner(cfg *config.Config) {
	fmt.Println(renderBanner(cfg))
}

// reportPartialResources lists the resources created before a failure so
// the operator knows what to inspect. Nothing is rolled back
// automatically.
func reportPartialResources(state *provisioning.State) {
	resources := state.Resources()
	if len(resources) == 0 {
		fmt.Fprintln(stderr, "\nNo resources were created before the failure.")
		return
	}

	fmt.Fprintln(stderr, "\nResources created before the failure:")
	for _, r := range resources {
		fmt.Fprintf(stderr, "  - %s: %s\n", r.Kind, r.ID)
	}
	fmt.Fprintln(stderr, "\nWARNING: these resources are now orphaned. Review the AWS console and clean up manually.")
}
