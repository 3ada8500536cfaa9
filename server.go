//
// Date: 2026-08-19
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: HTTP API server exposing each operation as a named
// tool for agent frameworks, plus the OAuth endpoints.
//

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// toolManifest lists every action the server exposes. Served at
// GET /api/v1/tools so a tool-calling agent can discover them.
var toolManifest = []ToolSpec{
	{
		Name:        "search",
		Description: "Search for a song on Spotify",
		Path:        "/api/v1/search",
		Params: []ToolParamSpec{
			{Name: "q", Type: "string", Required: true, Description: "Free-text track query"},
		},
	},
	{
		Name:        "start_playback",
		Description: "Play a song on Spotify",
		Path:        "/api/v1/play",
		Params: []ToolParamSpec{
			{Name: "track", Type: "string", Required: true, Description: "Track name or free-text query"},
		},
	},
	{
		Name:        "pause_playback",
		Description: "Pause the current playback",
		Path:        "/api/v1/pause",
	},
	{
		Name:        "resume_playback",
		Description: "Resume the current playback",
		Path:        "/api/v1/resume",
	},
	{
		Name:        "next_track",
		Description: "Skip to the next track",
		Path:        "/api/v1/next",
	},
	{
		Name:        "previous_track",
		Description: "Go back to the previous track",
		Path:        "/api/v1/previous",
	},
	{
		Name:        "set_volume",
		Description: "Set the volume (0-100)",
		Path:        "/api/v1/volume",
		Params: []ToolParamSpec{
			{Name: "level", Type: "integer", Required: true, Description: "Volume between 0 and 100"},
		},
	},
	{
		Name:        "current_playback",
		Description: "Get information about what's currently playing",
		Path:        "/api/v1/playback",
	},
	{
		Name:        "get_current_user",
		Description: "Get current user information",
		Path:        "/api/v1/me",
	},
	{
		Name:        "get_user_playlists",
		Description: "Get the user's playlists",
		Path:        "/api/v1/playlists",
	},
	{
		Name:        "list_devices",
		Description: "List available Spotify Connect devices",
		Path:        "/api/v1/devices",
	},
}

// startAPIServer starts the HTTP API server for agent access.
func startAPIServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleRootRequest)
	mux.HandleFunc("/auth", handleAuthRequest)
	mux.HandleFunc("/callback", handleAuthCallback)
	mux.HandleFunc("/api/v1/tools", handleToolsRequest)
	mux.HandleFunc("/api/v1/search", handleSearchRequest)
	mux.HandleFunc("/api/v1/play", handlePlayRequest)
	mux.HandleFunc("/api/v1/pause", handlePauseRequest)
	mux.HandleFunc("/api/v1/resume", handleResumeRequest)
	mux.HandleFunc("/api/v1/next", handleNextRequest)
	mux.HandleFunc("/api/v1/previous", handlePreviousRequest)
	mux.HandleFunc("/api/v1/volume", handleVolumeRequest)
	mux.HandleFunc("/api/v1/playback", handlePlaybackRequest)
	mux.HandleFunc("/api/v1/me", handleMeRequest)
	mux.HandleFunc("/api/v1/playlists", handlePlaylistsRequest)
	mux.HandleFunc("/api/v1/devices", handleDevicesRequest)

	fmt.Printf("Starting API server on port %s...\n", port)
	fmt.Println("Tool manifest: GET /api/v1/tools")

	err := http.ListenAndServe(":"+port, mux)
	if err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}
}

// verifyAccessToken checks the per-request access token from either
// the query string or the Authorization header. On failure it writes
// a 401 response and returns false.
func verifyAccessToken(w http.ResponseWriter, r *http.Request) bool {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	if token != apiAccessToken {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(APIResponse{
			Success: false,
			Error:   "Invalid or missing access token",
		})
		return false
	}

	return true
}

// writeResult writes the standard envelope for an operation outcome.
// Operation failures still produce HTTP 200; the envelope carries the
// stable kind tag for the caller to match on.
func writeResult(w http.ResponseWriter, data any, fail *OpError) {
	w.Header().Set("Content-Type", "application/json")

	if fail != nil {
		json.NewEncoder(w).Encode(APIResponse{
			Success: false,
			Error:   fail.Error(),
			Kind:    fail.Kind.Tag(),
		})
		return
	}

	json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeBadRequest writes a 400 for a missing or malformed parameter.
func writeBadRequest(w http.ResponseWriter, message, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   message,
		Kind:    kind,
	})
}

// handleRootRequest handles requests to the root path with a simple message.
func handleRootRequest(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "spotify-agent: see /api/v1/tools")
}

// handleAuthRequest redirects the user to Spotify's authorization page.
// Requires the API access token for security.
func handleAuthRequest(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	if token != apiAccessToken {
		http.Error(w, "Unauthorized: Invalid or missing access token", http.StatusUnauthorized)
		return
	}

	url := auth.AuthURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// handleAuthCallback handles the OAuth callback from Spotify after user
// authorization and swaps in the freshly authenticated client.
func handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	tok, err := auth.Token(r.Context(), state, r)
	if err != nil {
		http.Error(w, "Failed to get token: "+err.Error(), http.StatusForbidden)
		return
	}

	if st := r.FormValue("state"); st != state {
		http.Error(w, "State mismatch", http.StatusForbidden)
		return
	}

	// Save token for future use
	saveToken(tok)

	// Rebuild the operation layer around the new client
	ops = NewOperations(spotify.New(auth.Client(r.Context(), tok)))

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "Authentication successful! You can close this window.")
}

// requireOps verifies that the Spotify client has been authenticated.
func requireOps(w http.ResponseWriter) bool {
	if ops == nil {
		writeResult(w, nil, opErr(ErrAuth, "Spotify not authenticated. Visit /auth to authenticate"))
		return false
	}
	return true
}

// handleToolsRequest serves the tool manifest.
func handleToolsRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) {
		return
	}
	writeResult(w, toolManifest, nil)
}

// handleSearchRequest handles /api/v1/search?q=<query>.
func handleSearchRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeBadRequest(w, "q parameter is required", "")
		return
	}

	tracks, fail := ops.Search(r.Context(), query)
	writeResult(w, tracks, fail)
}

// handlePlayRequest handles /api/v1/play?track=<query>.
func handlePlayRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	track := r.URL.Query().Get("track")
	if track == "" {
		writeBadRequest(w, "track parameter is required", "")
		return
	}

	result, fail := ops.StartPlayback(r.Context(), track)
	writeResult(w, result, fail)
}

// handlePauseRequest handles /api/v1/pause.
func handlePauseRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	result, fail := ops.PausePlayback(r.Context())
	writeResult(w, result, fail)
}

// handleResumeRequest handles /api/v1/resume.
func handleResumeRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	result, fail := ops.ResumePlayback(r.Context())
	writeResult(w, result, fail)
}

// handleNextRequest handles /api/v1/next.
func handleNextRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	result, fail := ops.NextTrack(r.Context())
	writeResult(w, result, fail)
}

// handlePreviousRequest handles /api/v1/previous.
func handlePreviousRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	result, fail := ops.PreviousTrack(r.Context())
	writeResult(w, result, fail)
}

// handleVolumeRequest handles /api/v1/volume?level=<0-100>. A
// non-integer level is rejected here, before any Spotify call.
func handleVolumeRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	levelStr := r.URL.Query().Get("level")
	if levelStr == "" {
		writeBadRequest(w, "level parameter is required", "")
		return
	}

	level, err := strconv.Atoi(levelStr)
	if err != nil {
		writeBadRequest(w, opErr(ErrInvalidVolume, "Volume must be an integer between 0 and 100").Error(), ErrInvalidVolume.Tag())
		return
	}

	result, fail := ops.SetVolume(r.Context(), level)
	writeResult(w, result, fail)
}

// handlePlaybackRequest handles /api/v1/playback.
func handlePlaybackRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	status, fail := ops.GetCurrentPlayback(r.Context())
	writeResult(w, status, fail)
}

// handleMeRequest handles /api/v1/me.
func handleMeRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	user, fail := ops.GetCurrentUser(r.Context())
	writeResult(w, user, fail)
}

// handlePlaylistsRequest handles /api/v1/playlists.
func handlePlaylistsRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	playlists, fail := ops.GetUserPlaylists(r.Context())
	writeResult(w, playlists, fail)
}

// handleDevicesRequest handles /api/v1/devices.
func handleDevicesRequest(w http.ResponseWriter, r *http.Request) {
	if !verifyAccessToken(w, r) || !requireOps(w) {
		return
	}

	devices, fail := ops.ListDevices(r.Context())
	writeResult(w, devices, fail)
}
