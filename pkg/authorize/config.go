package authorize

import "github.com/Alijeyrad/crm_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// ModelPath is the path to a Casbin model file. Empty means DefaultModel.
	ModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool

	// PolicySync turns on the postgres LISTEN/NOTIFY watcher so policy
	// changes reach every instance.
	PolicySync bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		EnableAudit: true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	return Config{
		ModelPath:   c.CasbinModelPath,
		EnableAudit: c.EnableAudit,
		PolicySync:  c.PolicySync,
	}
}
