package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/hrdeploy/internal/config"
	"github.com/imamik/hrdeploy/internal/provisioning"
)

var (
	deployColorGreen  = lipgloss.Color("#22c55e")
	deployColorYellow = lipgloss.Color("#eab308")
	deployColorBlue   = lipgloss.Color("#3b82f6")
	deployColorDim    = lipgloss.Color("#6b7280")
	deployColorWhite  = lipgloss.Color("#f9fafb")
)

var (
	deployTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(deployColorWhite)

	deploySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(deployColorBlue)

	deployDimStyle = lipgloss.NewStyle().
			Foreground(deployColorDim)

	deployValueStyle = lipgloss.NewStyle().
				Foreground(deployColorGreen)

	deployWarnStyle = lipgloss.NewStyle().
			Foreground(deployColorYellow)
)

// securityReminders are the follow-up actions the operator is reminded of
// after every successful deployment.
var securityReminders = []string{
	"Change the default passwords",
	"Configure SSL certificates for HTTPS",
	"Restrict the security group to known IPs in production",
	"Enable CloudTrail for auditing",
	"Verify automatic backups",
	"Review and tighten IAM policies",
	"Never commit credentials to the repository",
}

// renderBanner produces the deployment header shown before provisioning
// starts.
func renderBanner(cfg *config.Config) string {
	var b strings.Builder

	b.WriteString(deployTitleStyle.Render("  HR application deployment"))
	b.WriteString("\n")
	b.WriteString(deployDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", deployDimStyle.Render("region:     "), cfg.Region)
	fmt.Fprintf(&b, "  %s %s\n", deployDimStyle.Render("environment:"), cfg.Environment)
	fmt.Fprintf(&b, "  %s %s\n", deployDimStyle.Render("application:"), cfg.AppName)

	return b.String()
}

// renderDeploySummary produces the styled summary printed after a fully
// successful deployment.
func renderDeploySummary(cfg *config.Config, state *provisioning.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(deployTitleStyle.Render(fmt.Sprintf("  Deployment complete: %s", cfg.AppName)))
	b.WriteString("\n")
	b.WriteString(deployDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(deploySectionStyle.Render("  Provisioned resources"))
	b.WriteString("\n")
	for _, r := range state.Resources() {
		fmt.Fprintf(&b, "    %s %s\n",
			deployDimStyle.Render(fmt.Sprintf("%-14s", r.Kind+":")),
			deployValueStyle.Render(r.ID))
	}

	b.WriteString("\n")
	b.WriteString(deployWarnStyle.Render("  IMPORTANT - security follow-ups"))
	b.WriteString("\n")
	for i, reminder := range securityReminders {
		fmt.Fprintf(&b, "    %d. %s\n", i+1, reminder)
	}

	return b.String()
}
