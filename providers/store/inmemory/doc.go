// Package inmemory provides map-backed implementations of the [store.Jobs]
// and [store.Objects] collaborators. They are intended for tests and local
// CLI runs; nothing survives the process.
package inmemory
