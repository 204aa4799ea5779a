package handler

import "errors"

// errNoHandlersAreCreated means the server config enables neither the HTTP
// nor the gRPC listener.
var errNoHandlersAreCreated = errors.New("no handlers are created")
