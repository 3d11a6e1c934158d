// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The final merged
// configuration is validated before use: a missing token sign key or
// database DSN aborts startup instead of silently falling back to an
// insecure default.
package config
