// internal/version/version.go
package version

// Version is the reported tool version.
const Version = "0.1.0"
