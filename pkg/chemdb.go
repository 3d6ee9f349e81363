// Package chemdb keeps version information of the chemdb application.
package chemdb

var (
	// Version of chemdb, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
