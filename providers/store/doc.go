// Package store defines the persistence collaborators the extraction
// pipeline talks to: [Jobs], a key-value job-record store, and [Objects], a
// blob store for result payloads. In production these sit in front of a
// database and an object storage service; the [inmemory] subpackage provides
// implementations for tests and local runs.
//
// The pipeline core never persists anything itself; these interfaces mark
// the boundary where ownership transfers to the orchestration layer.
package store
