// Package filesystem provides filesystem implementations for desks.
//
// This package contains the implementation of the types.FS interface backed
// by the operating system. Tests wrap it (see pkg/testutil) to inject faults.
package filesystem
