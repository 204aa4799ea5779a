// Package http implements the HTTP/JSON transport of the turf-booking API.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, response compression and CORS are handled
// in this package before requests are delegated to the service layer.
package http
