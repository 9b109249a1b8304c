// Package mocks provides shared test doubles.
//
// Most mocks follow one pattern: a struct with an optional function field
// per interface method plus default return values, and call tracking for
// assertions. MockKeyValueStore additionally falls through to an in-memory
// store, so tests only script the failures they care about:
//
//	kv := &mocks.MockKeyValueStore{SetErr: errors.New("disk full")}
//	repo := repository.NewStreakRepository(kv, nil)
//
// AffirmationSource is a testify mock for tests that assert on arguments.
package mocks
