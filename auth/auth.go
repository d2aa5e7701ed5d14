// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrMissingCaller    = errors.New("caller address required")
	ErrInvalidCallerKey = errors.New("invalid caller key")
)

// GenerateCallerKey creates the HMAC-based key that proves control of an address
// This is deterministic and verifiable
func GenerateCallerKey(address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(address))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCallerKey checks if the provided key was issued for the address
func ValidateCallerKey(address, callerKey, salt string) error {
	if address == "" {
		return ErrMissingCaller
	}
	expected := GenerateCallerKey(address, salt)
	if !hmac.Equal([]byte(callerKey), []byte(expected)) {
		return ErrInvalidCallerKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for correlating log lines
	return hex.EncodeToString(sum[:8])
}
