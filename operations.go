//
// Date: 2026-08-18
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: The operation layer. Each method validates input, runs
// the device precondition where required, issues exactly one Spotify
// call, and reshapes the response. Failures always come back as an
// OpError, never as a raw client error.
//

package main

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

const searchLimit = 5

// Operations wraps an authenticated Spotify client and exposes the
// actions served to agents. The client is injected so tests can
// substitute a mock.
type Operations struct {
	client SpotifyClient
}

// NewOperations returns an operation layer backed by the given client.
func NewOperations(client SpotifyClient) *Operations {
	return &Operations{client: client}
}

// checkActiveDevice verifies that at least one Spotify Connect device
// is available. It must run before every playback-mutating call and
// never before read-only ones.
func (o *Operations) checkActiveDevice(ctx context.Context) *OpError {
	devices, err := o.client.PlayerDevices(ctx)
	if err != nil {
		return wrapClientError(err, ErrUnknown)
	}
	if len(devices) == 0 {
		return opErr(ErrNoActiveDevice, "Please open Spotify on a device and try again.")
	}
	return nil
}

// Search looks up tracks matching the query, returning at most five
// summaries. Search does not require an active device.
func (o *Operations) Search(ctx context.Context, query string) ([]TrackSummary, *OpError) {
	results, err := o.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(searchLimit))
	if err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return nil, opErr(ErrNoTracksFound, "No tracks found for your query.")
	}

	tracks := make([]TrackSummary, 0, len(results.Tracks.Tracks))
	for _, item := range results.Tracks.Tracks {
		tracks = append(tracks, summarizeTrack(&item))
	}

	return tracks, nil
}

// StartPlayback searches for the best match of the query and starts
// playing it on the active device.
func (o *Operations) StartPlayback(ctx context.Context, query string) (*StatusResult, *OpError) {
	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	results, err := o.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return nil, opErr(ErrNoTracksFound, "No tracks found for playback.")
	}

	track := results.Tracks.Tracks[0]
	err = o.client.PlayOpt(ctx, &spotify.PlayOptions{URIs: []spotify.URI{track.URI}})
	if err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{
		Status: "playing",
		Track:  track.Name,
		Artist: primaryArtist(track.Artists),
	}, nil
}

// PausePlayback pauses the current playback.
func (o *Operations) PausePlayback(ctx context.Context) (*StatusResult, *OpError) {
	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	if err := o.client.Pause(ctx); err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{Status: "paused"}, nil
}

// ResumePlayback resumes playback on the active device.
func (o *Operations) ResumePlayback(ctx context.Context) (*StatusResult, *OpError) {
	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	if err := o.client.Play(ctx); err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{Status: "resumed"}, nil
}

// NextTrack skips to the next track in the queue.
func (o *Operations) NextTrack(ctx context.Context) (*StatusResult, *OpError) {
	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	if err := o.client.Next(ctx); err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{Status: "skipped to next"}, nil
}

// PreviousTrack returns to the previous track.
func (o *Operations) PreviousTrack(ctx context.Context) (*StatusResult, *OpError) {
	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	if err := o.client.Previous(ctx); err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{Status: "returned to previous"}, nil
}

// SetVolume sets the playback volume. The range check runs before any
// remote call, including the device precondition.
func (o *Operations) SetVolume(ctx context.Context, volume int) (*StatusResult, *OpError) {
	if volume < 0 || volume > 100 {
		return nil, opErr(ErrInvalidVolume, "Volume must be an integer between 0 and 100")
	}

	if fail := o.checkActiveDevice(ctx); fail != nil {
		return nil, fail
	}

	if err := o.client.Volume(ctx, volume); err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	return &StatusResult{Status: fmt.Sprintf("Volume set to %d", volume)}, nil
}

// GetCurrentUser fetches the authenticated user's profile. Retrieval
// failures are treated as auth-related.
func (o *Operations) GetCurrentUser(ctx context.Context) (*UserProfile, *OpError) {
	user, err := o.client.CurrentUser(ctx)
	if err != nil {
		return nil, opErr(ErrAuth, err.Error())
	}

	return &UserProfile{
		DisplayName: user.DisplayName,
		Email:       user.Email,
		ID:          user.ID,
	}, nil
}

// GetUserPlaylists fetches all of the user's playlists, following
// pagination 50 at a time.
func (o *Operations) GetUserPlaylists(ctx context.Context) ([]PlaylistSummary, *OpError) {
	var playlists []PlaylistSummary

	limit := 50
	offset := 0

	for {
		page, err := o.client.CurrentUsersPlaylists(ctx, spotify.Limit(limit), spotify.Offset(offset))
		if err != nil {
			return nil, wrapClientError(err, ErrUnknown)
		}

		for _, pl := range page.Playlists {
			playlists = append(playlists, PlaylistSummary{
				Name:        pl.Name,
				URL:         pl.ExternalURLs["spotify"],
				ID:          string(pl.ID),
				TracksTotal: int(pl.Tracks.Total),
			})
		}

		if len(page.Playlists) < limit {
			break
		}
		offset += limit
	}

	if len(playlists) == 0 {
		return nil, opErr(ErrUnknown, "No playlists found.")
	}

	return playlists, nil
}

// GetCurrentPlayback returns the state of the current playback
// session. Progress and duration are passed through unvalidated.
func (o *Operations) GetCurrentPlayback(ctx context.Context) (*PlaybackStatus, *OpError) {
	state, err := o.client.PlayerState(ctx)
	if err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	if state == nil || state.Item == nil {
		return nil, opErr(ErrNothingPlaying, "Nothing is playing.")
	}

	return &PlaybackStatus{
		IsPlaying:  state.Playing,
		TrackName:  state.Item.Name,
		Artist:     primaryArtist(state.Item.Artists),
		Album:      state.Item.Album.Name,
		ProgressMs: int(state.Progress),
		DurationMs: int(state.Item.Duration),
	}, nil
}

// ListDevices returns the available Spotify Connect devices. An empty
// list is a valid result here; this is the read-only probe, not a
// mutating call.
func (o *Operations) ListDevices(ctx context.Context) ([]DeviceSummary, *OpError) {
	devices, err := o.client.PlayerDevices(ctx)
	if err != nil {
		return nil, wrapClientError(err, ErrUnknown)
	}

	summaries := make([]DeviceSummary, 0, len(devices))
	for _, device := range devices {
		summaries = append(summaries, DeviceSummary{
			ID:     string(device.ID),
			Name:   device.Name,
			Type:   device.Type,
			Active: device.Active,
		})
	}

	return summaries, nil
}

// summarizeTrack flattens a full track into the summary shape.
func summarizeTrack(track *spotify.FullTrack) TrackSummary {
	return TrackSummary{
		Name:   track.Name,
		Artist: primaryArtist(track.Artists),
		Album:  track.Album.Name,
		URI:    string(track.URI),
		URL:    track.ExternalURLs["spotify"],
	}
}

// primaryArtist returns the first artist's name, or an empty string
// when the track has no artist entries.
func primaryArtist(artists []spotify.SimpleArtist) string {
	if len(artists) == 0 {
		return ""
	}
	return artists[0].Name
}
