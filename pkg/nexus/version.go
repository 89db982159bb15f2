// Package nexus holds build-level metadata for the nexus toolkit.
package nexus

// Version is the release version reported by `nexus version`.
const Version = "0.3.0"
