package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hrdeploy/cmd/hrdeploy/handlers"
)

// Deploy returns the command for provisioning the HR application's
// infrastructure.
//
// Optional flags:
//
//	--config, -c: Path to a JSON configuration file overriding the defaults
//
// Environment variables:
//
//	RDS_ADMIN_PASSWORD: Administrator password for the database (required)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY: AWS credentials (required)
func Deploy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Provision the HR application infrastructure on AWS",
		Long: `Provision the AWS infrastructure for the HR application.

Four resources are created in a fixed order: a security group, an
encrypted S3 bucket for backups, an EC2 web server instance, and a
private RDS MySQL database. On failure the remaining steps are skipped
and the resources created so far are listed; nothing is rolled back.

Examples:
  # Deploy with the built-in defaults
  hrdeploy deploy

  # Deploy with configuration overrides
  hrdeploy deploy -c config.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON configuration file (optional)")

	return cmd
}
