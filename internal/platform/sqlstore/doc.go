// Package sqlstore implements the key-value store port on a single
// kv_entries table through sqlx. PostgreSQL (pgx stdlib driver) and SQLite
// (modernc.org/sqlite) are both supported; the schema is managed by goose
// migrations embedded in the binary.
package sqlstore
