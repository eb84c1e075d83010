// Package directory provides Directory Service adapters: publishing and
// looking up public keys (PKIX DER) per owner id.
//
// HTTPDirectory talks JSON over HTTP to a remote directory. FileDirectory
// keeps one PEM file per owner for single-machine deployments and the CLI.
// MemoryDirectory backs tests.
package directory
