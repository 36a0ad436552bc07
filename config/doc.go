// Package config holds the configuration of an OSRM API client: the server
// connection parameters, request hooks, cache settings and user agent.
//
// A Configuration starts with defaults and is changed through its setters,
// either one field at a time or in bulk with Merge. Every change runs the
// field's own coercion and validation, so the invariants hold after each call.
// Source loads options from a file, a drop-in directory and the environment
// and merges them into a fresh Configuration.
//
// A Configuration is not safe for concurrent mutation. Callers that share one
// across goroutines serialize access themselves or hand out Clone copies.
package config
