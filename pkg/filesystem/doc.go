// Package filesystem provides the types.FS implementations crosspath runs
// on: the OS filesystem and an in-memory one for tests, both through afero.
package filesystem
