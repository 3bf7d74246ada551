// Package http implements the reference catalog server's HTTP transport.
//
// It serves the catalog feed and images the client syncs from and accepts
// search-usage logs. Request tracing, access logging and response
// compression are handled here before requests reach the service layer.
package http
