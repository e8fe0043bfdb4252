// Package types defines the Store interface, entity types, the export
// document format, and standard errors for the ricettario recipe catalog.
package types
