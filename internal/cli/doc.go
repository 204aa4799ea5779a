// Package cli implements turfctl, the command-line client of the
// turf-booking API.
//
// Every command talks to the server through [adapter.ServerAdapter]. The
// bearer token obtained by `turfctl login` is persisted to the configured
// token file and attached to booking commands on later runs.
package cli
