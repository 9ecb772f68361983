// Package config handles run configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every section is optional so a run can be driven entirely by CLI flags.
package config
