// Package service contains the application use cases. It coordinates the
// typed repositories, the streak calculations and the affirmation pipeline
// on behalf of the API and the CLI.
//
// Reads never fail because of storage: a degraded read falls back to
// defaults and is logged. Mutations are stricter. A service that has to
// read a record before changing it refuses to write when that read was
// degraded, returning ErrStorageUnavailable, so a transient outage never
// replaces user data with defaults.
//
// Every method that depends on the user's calendar day takes a
// *time.Location; see TimezoneResolver.
package service
