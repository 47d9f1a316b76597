package provisioning

import "github.com/imamik/hrdeploy/internal/config"

// resourceTags returns the common tag set applied to every provisioned
// resource, plus the resource's Name tag.
func resourceTags(cfg *config.Config, name string) map[string]string {
	return map[string]string{
		"Name":        name,
		"Environment": cfg.Environment,
		"Application": "HR",
	}
}
