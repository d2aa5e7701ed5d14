// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth authenticates callers of owner-gated operations.

# Caller Keys

A caller key is an HMAC-SHA256 of the caller's address under the server's
CALLER_KEY_SALT, URL-safe base64 without padding:

	key := auth.GenerateCallerKey("GOWNER...", salt)

Requests present the address in X-Caller-Address and the key in X-Caller-Key.
ValidateCallerKey recomputes the key and compares in constant time:

	if err := auth.ValidateCallerKey(addr, key, salt); err != nil {
		// 401
	}

Keys are deterministic, so the operator can hand one out with

	voting-org -key-for GOWNER...

# IP Hashing

HashIP produces a salted 64-bit hex digest of a client IP for request logs.
*/
package auth
