// Package store provides read-only SQLite access for running
// generated statements against a real database.
//
// The translation core never touches storage; this package exists
// for the exec command, which is glue around the pipeline. Databases
// are always opened with query_only set, so a translated stylesheet
// can be executed against production data without any possibility of
// writes.
package store
