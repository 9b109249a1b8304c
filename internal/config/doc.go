// Package config handles configuration loading, parsing, and validation
// from environment variables (LIO_ prefix), an optional config.yaml and an
// optional .env file. It provides type-safe access to the settings needed by
// the server and the CLI while keeping configuration details separate from
// business logic.
package config
