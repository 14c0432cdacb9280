// Package filesystem provides filesystem implementations for decorate.
//
// This package contains implementations of the types.FS interface,
// currently only the standard OS filesystem.
package filesystem
