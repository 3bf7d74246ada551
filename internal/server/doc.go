// Package server runs the reference catalog server's HTTP listener,
// including signal handling and graceful shutdown.
package server
