// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The entry point is [GetClientConfig], which projects the merged
// [StructuredConfig] into the client runtime view and applies defaults.
package config
