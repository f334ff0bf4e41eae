// Package types defines the interfaces crosspath depends on but does not
// implement itself: the filesystem it reads and writes through, and the
// environment that resolves the home and temp directories.
package types
