// Package utils provides shared low-level helpers used throughout the
// formpipe internals: [DoPostSync] for synchronous JSON round-trips against
// provider APIs, and small string/JSON helpers safe to use in log output.
package utils
