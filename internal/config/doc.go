// Package config provides configuration loading, merging, and validation
// facilities for the car-sharing service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. When every source is empty
// the service falls back to a local file-backed sqlite store at "cars.db"
// listening on :8000.
package config
