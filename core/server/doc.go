// Package server holds the configuration for the HTTP serve mode.
//
// The serve mode keeps the reference roster in memory and exposes the
// matching engine over HTTP. The configuration covers the listen port,
// an optional API key, and the location of the reference roster file.
package server
