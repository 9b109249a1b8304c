// Package domain defines the core entities of Lio: streak records and the
// views derived from them, affirmations, custom phrases, onboarding profiles
// and notification settings. Types here have no storage or transport
// dependencies; JSON tags describe the persisted record format.
package domain
