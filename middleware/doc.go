// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /voters", middleware.WithLogging(cfg.CallerKeySalt, handler))

Logs request start (request_id, method, path, hashed client IP) and completion
(duration_ms). The request ID comes from X-Request-ID or a fresh UUID and is
echoed back in the response header.

# Caller Identity

Owner-gated handlers authenticate the caller from X-Caller-Address and
X-Caller-Key:

	caller, err := middleware.Caller(r, cfg.CallerKeySalt)

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS and the caller headers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	err := middleware.ParseJSONBody(r, &req)

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
