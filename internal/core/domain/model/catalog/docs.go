// Package catalog provides the static restaurant catalog: Restaurant and
// MenuItem aggregates. Both are seed data, immutable after creation, and
// looked up by exact name during order intake.
package catalog
