// Package config provides configuration loading and validation for dirserve.
//
// The package handles YAML configuration files, environment variables, and CLI
// flags with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (DIRSERVE_ prefix)
//  4. CLI flags
//
// # Environment Variables
//
// All config keys map to environment variables with DIRSERVE_ prefix:
//   - server.port → DIRSERVE_SERVER_PORT
//   - serve.root → DIRSERVE_SERVE_ROOT
//   - log.level → DIRSERVE_LOG_LEVEL
//   - log.format → DIRSERVE_LOG_FORMAT
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Serve root must be set; ValidateRoot additionally checks it exists and
//     is a directory before the server starts
//   - Log level must be debug, info, warn, or error
//   - Log format must be text (tinted, for interactive use) or json (one
//     object per line, for log shippers)
package config
