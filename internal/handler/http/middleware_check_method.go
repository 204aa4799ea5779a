// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve is answered with a
// JSON 404 rather than chi's 405, so "DELETE /turfs" and "GET /turfs/7" look
// exactly like unknown paths.
//
// Requests that do resolve to a handler (router.Match succeeds for the
// method) are handed back to the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not served on path")
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
