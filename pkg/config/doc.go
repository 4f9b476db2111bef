// Package config resolves the static-site deploy configuration for a target.
// The S3 request builders and ParseConfig are used by the external deploy pipeline, not by the CLI.
package config
