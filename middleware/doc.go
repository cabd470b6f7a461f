// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an X-Request-ID: an incoming header is
reused, otherwise a random UUID is generated. The ID is echoed on the
response and attached to both log lines.

# Error Pages

Write a plain-text error response:

	middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
