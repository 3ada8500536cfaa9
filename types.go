//
// Date: 2026-08-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Type definitions and interfaces for the Spotify Agent
// application.
//

package main

import (
	"context"

	"github.com/zmb3/spotify/v2"
)

// SpotifyClient defines the interface for Spotify API operations.
// This allows for mocking in tests.
type SpotifyClient interface {
	Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
	PlayerDevices(ctx context.Context) ([]spotify.PlayerDevice, error)
	PlayOpt(ctx context.Context, opts *spotify.PlayOptions) error
	Pause(ctx context.Context) error
	Play(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Volume(ctx context.Context, percent int) error
	PlayerState(ctx context.Context, opts ...spotify.RequestOption) (*spotify.PlayerState, error)
	CurrentUser(ctx context.Context) (*spotify.PrivateUser, error)
	CurrentUsersPlaylists(ctx context.Context, opts ...spotify.RequestOption) (*spotify.SimplePlaylistPage, error)
}

// TrackSummary is the flattened view of a search result item. Artist
// is the primary (first) artist only.
type TrackSummary struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
	URI    string `json:"uri"`
	URL    string `json:"url"`
}

// PlaylistSummary is the flattened view of one of the user's playlists.
type PlaylistSummary struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ID          string `json:"id"`
	TracksTotal int    `json:"tracks_total"`
}

// PlaybackStatus describes the current playback session. Progress and
// duration are passed through from the API as-is.
type PlaybackStatus struct {
	IsPlaying  bool   `json:"is_playing"`
	TrackName  string `json:"track_name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	ProgressMs int    `json:"progress_ms"`
	DurationMs int    `json:"duration_ms"`
}

// UserProfile describes the authenticated user. Fields the API omits
// stay empty.
type UserProfile struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ID          string `json:"id"`
}

// DeviceSummary is the flattened view of a Spotify Connect device.
type DeviceSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// StatusResult is the payload for playback-mutating operations.
type StatusResult struct {
	Status string `json:"status"`
	Track  string `json:"track,omitempty"`
	Artist string `json:"artist,omitempty"`
}

// APIResponse represents a standard JSON response for the API. Kind
// carries the stable error tag when Success is false.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// ToolSpec describes one callable action in the tools manifest so a
// tool-calling agent can discover what this server exposes.
type ToolSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Path        string          `json:"path"`
	Params      []ToolParamSpec `json:"params,omitempty"`
}

// ToolParamSpec describes a single query parameter of a tool.
type ToolParamSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}
