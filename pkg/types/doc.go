// Package types defines the entities shown by the nexus dashboard views, the
// Store and Table interfaces that supply them, backend configuration, and the
// standard errors shared by every backend.
package types
