// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between the mobile client
// and the internal services, translating HTTP concerns to operations on a
// user's streak, feed and preferences.
package api
