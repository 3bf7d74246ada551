// Package utils provides general-purpose helpers shared by the client:
// a preconfigured resty HTTP client and a run identifier generator.
package utils
