// Package store defines the key-value persistence port used by the rest of
// the application, together with the errors shared by every implementation
// and a transaction helper for SQL-backed adapters.
package store
