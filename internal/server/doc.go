// Package server exposes the analysis pipeline over HTTP with echo. It serves
// a JSON analysis endpoint, health probes, the version and Prometheus metrics.
package server
