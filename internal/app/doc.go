// Package app builds the notelock dependency graph: configuration from the
// environment, collaborator adapters, and the custody service.
package app
