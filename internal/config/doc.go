// Package config provides configuration management for the mcpconf CLI.
//
// This package handles loading and validating the mcpconf tool's own
// configuration file. It is distinct from the MCP client configurations
// the tool renders, which are described by the client catalog.
//
// # Configuration File
//
// The default configuration file location is ~/.config/mcpconf/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_client: claude-code
//	clients:
//	  opencode:
//	    config_path: /custom/opencode.json # optional
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load] with an empty path to search the
// default locations with graceful fallback to default values:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Pass an explicit path to load a specific file; a missing file is then an
// error rather than a fallback.
//
// # Validation
//
// Loaded configurations are validated automatically. You can also validate
// a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
