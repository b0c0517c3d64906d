// Package store defines the persistence interfaces consumed by the service
// and API layers, together with the sentinel errors implementations must
// return. Concrete implementations live under internal/platform.
package store
