// Package config handles configuration loading for the showcase client.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults; a missing file is not
// an error for callers that fall back to Default().
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from SHOWCASE_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/showcase/config.yaml
//  3. ~/.config/showcase/config.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	server:
//	  base_url: "${SHOWCASE_SERVER}"
//
// Syntax: ${VAR_NAME}. Unset variables expand to the empty string.
//
// # Configuration Sections
//
// Backend address:
//
//	server:
//	  base_url: "http://localhost:8000"
//
// Admin panel:
//
//	admin:
//	  lead_limit: 200          # page size of the admin lead fetch
//	  export_path: "leads.csv" # where the CSV export is written
//
// Host identity:
//
//	identity:
//	  init_data_file: ""       # overrides the default init-data location
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//	  file: ""        # log file; empty discards logs while the TUI runs
//
// # Validation
//
// Load() validates:
//
//   - server.base_url is non-empty
//   - admin.lead_limit is positive
//   - admin.export_path is non-empty
//
// # Usage
//
// Load configuration from a specific path:
//
//	cfg, err := config.Load("/etc/showcase/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
