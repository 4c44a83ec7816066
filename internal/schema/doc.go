// Package schema checks raw JSON payloads against per-entity constraint sets.
//
// A constraint set is a wire struct whose fields are pointers (so "missing"
// and "null" are distinguishable from a zero value) annotated with validator
// tags. Batch validation is all-or-nothing: one bad element rejects the batch.
package schema
