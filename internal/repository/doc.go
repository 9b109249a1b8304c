// Package repository maps Lio's per-user records onto the key-value store
// port. Every record is a JSON document under a namespaced key of the form
// "lio:<userID>:<record>".
//
// Reads never fail: a missing record yields its default value, and a store
// error or an undecodable document yields the default value flagged as
// degraded, so callers can decide whether to proceed or refuse to write.
package repository
