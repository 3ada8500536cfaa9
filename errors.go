//
// Date: 2026-08-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Error kinds and the operation error type. Every
// operation failure is normalized into an OpError; no error from the
// Spotify client escapes the operation layer.
//

package main

import (
	"errors"
	"net/http"

	"github.com/zmb3/spotify/v2"
)

// ErrorKind identifies the failure category of an operation.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrNoActiveDevice
	ErrNoTracksFound
	ErrNothingPlaying
	ErrInvalidVolume
	ErrAuth
)

// template returns the fixed human-readable prefix for the kind.
func (k ErrorKind) template() string {
	switch k {
	case ErrNoActiveDevice:
		return "No active device"
	case ErrNoTracksFound:
		return "No tracks found"
	case ErrNothingPlaying:
		return "Nothing playing"
	case ErrInvalidVolume:
		return "Invalid volume"
	case ErrAuth:
		return "Authentication error"
	default:
		return "Spotify error"
	}
}

// Tag returns the stable wire identifier for the kind, used in API
// responses so callers can match on it without parsing messages.
func (k ErrorKind) Tag() string {
	switch k {
	case ErrNoActiveDevice:
		return "no_active_device"
	case ErrNoTracksFound:
		return "no_tracks_found"
	case ErrNothingPlaying:
		return "nothing_playing"
	case ErrInvalidVolume:
		return "invalid_volume"
	case ErrAuth:
		return "auth_error"
	default:
		return "unknown"
	}
}

// OpError is the failure half of an operation result. Kind is the
// closed category, Detail the proximate cause (a client error message
// or a short hint for the user).
type OpError struct {
	Kind   ErrorKind
	Detail string
}

// Error formats the failure as "{template}: {detail}".
func (e *OpError) Error() string {
	return e.Kind.template() + ": " + e.Detail
}

// opErr builds an OpError for the given kind and detail.
func opErr(kind ErrorKind, detail string) *OpError {
	return &OpError{Kind: kind, Detail: detail}
}

// wrapClientError classifies an error returned by the Spotify client.
// Authorization failures (401/403 from the Web API) become ErrAuth;
// everything else falls back to the provided kind.
func wrapClientError(err error, fallback ErrorKind) *OpError {
	var spErr spotify.Error
	if errors.As(err, &spErr) {
		if spErr.Status == http.StatusUnauthorized || spErr.Status == http.StatusForbidden {
			return opErr(ErrAuth, spErr.Message)
		}
	}
	return opErr(fallback, err.Error())
}
