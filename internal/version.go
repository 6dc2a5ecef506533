// Package internal holds shared bits for the lexibuild binary.
package internal

// Version is the lexibuild release version.
const Version = "0.9.0"
