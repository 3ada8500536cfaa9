//
// Date: 2026-08-20
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Mock Spotify client and fixture helpers shared by the
// test files.
//

package main

import (
	"context"

	"github.com/zmb3/spotify/v2"
)

// MockSpotifyClient is a mock implementation of the SpotifyClient
// interface for testing. Unset func fields fall back to benign
// defaults.
type MockSpotifyClient struct {
	SearchFunc                func(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
	PlayerDevicesFunc         func(ctx context.Context) ([]spotify.PlayerDevice, error)
	PlayOptFunc               func(ctx context.Context, opts *spotify.PlayOptions) error
	PauseFunc                 func(ctx context.Context) error
	PlayFunc                  func(ctx context.Context) error
	NextFunc                  func(ctx context.Context) error
	PreviousFunc              func(ctx context.Context) error
	VolumeFunc                func(ctx context.Context, percent int) error
	PlayerStateFunc           func(ctx context.Context) (*spotify.PlayerState, error)
	CurrentUserFunc           func(ctx context.Context) (*spotify.PrivateUser, error)
	CurrentUsersPlaylistsFunc func(ctx context.Context, opts ...spotify.RequestOption) (*spotify.SimplePlaylistPage, error)
}

// Search returns track search results.
func (m *MockSpotifyClient) Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, t, opts...)
	}
	return searchResult(fullTrack("Test Track", "Test Artist", "Test Album")), nil
}

// PlayerDevices returns available devices.
func (m *MockSpotifyClient) PlayerDevices(ctx context.Context) ([]spotify.PlayerDevice, error) {
	if m.PlayerDevicesFunc != nil {
		return m.PlayerDevicesFunc(ctx)
	}
	return []spotify.PlayerDevice{
		{
			ID:     "device123",
			Name:   "Living Room Speaker",
			Type:   "Speaker",
			Active: true,
		},
	}, nil
}

// PlayOpt starts playback with options.
func (m *MockSpotifyClient) PlayOpt(ctx context.Context, opts *spotify.PlayOptions) error {
	if m.PlayOptFunc != nil {
		return m.PlayOptFunc(ctx, opts)
	}
	return nil
}

// Pause pauses playback.
func (m *MockSpotifyClient) Pause(ctx context.Context) error {
	if m.PauseFunc != nil {
		return m.PauseFunc(ctx)
	}
	return nil
}

// Play resumes playback.
func (m *MockSpotifyClient) Play(ctx context.Context) error {
	if m.PlayFunc != nil {
		return m.PlayFunc(ctx)
	}
	return nil
}

// Next skips to the next track.
func (m *MockSpotifyClient) Next(ctx context.Context) error {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return nil
}

// Previous returns to the previous track.
func (m *MockSpotifyClient) Previous(ctx context.Context) error {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx)
	}
	return nil
}

// Volume sets the playback volume.
func (m *MockSpotifyClient) Volume(ctx context.Context, percent int) error {
	if m.VolumeFunc != nil {
		return m.VolumeFunc(ctx, percent)
	}
	return nil
}

// PlayerState returns the current playback state.
func (m *MockSpotifyClient) PlayerState(ctx context.Context, opts ...spotify.RequestOption) (*spotify.PlayerState, error) {
	if m.PlayerStateFunc != nil {
		return m.PlayerStateFunc(ctx)
	}
	track := fullTrack("Test Track", "Test Artist", "Test Album")
	return &spotify.PlayerState{
		CurrentlyPlaying: spotify.CurrentlyPlaying{
			Playing:  true,
			Progress: 1000,
			Item:     &track,
		},
	}, nil
}

// CurrentUser returns the current user.
func (m *MockSpotifyClient) CurrentUser(ctx context.Context) (*spotify.PrivateUser, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &spotify.PrivateUser{
		User: spotify.User{
			DisplayName: "Test User",
			ID:          "testuser123",
		},
		Email: "test@example.com",
	}, nil
}

// CurrentUsersPlaylists returns the user's playlists.
func (m *MockSpotifyClient) CurrentUsersPlaylists(ctx context.Context, opts ...spotify.RequestOption) (*spotify.SimplePlaylistPage, error) {
	if m.CurrentUsersPlaylistsFunc != nil {
		return m.CurrentUsersPlaylistsFunc(ctx, opts...)
	}
	return &spotify.SimplePlaylistPage{
		Playlists: []spotify.SimplePlaylist{
			{ID: "playlist123", Name: "Test Playlist"},
		},
	}, nil
}

// fullTrack builds a FullTrack fixture with a single artist.
func fullTrack(name, artist, album string) spotify.FullTrack {
	return spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{
			Name:     name,
			Artists:  []spotify.SimpleArtist{{Name: artist}},
			URI:      spotify.URI("spotify:track:" + name),
			Duration: 200000,
			ExternalURLs: map[string]string{
				"spotify": "https://open.spotify.com/track/" + name,
			},
		},
		Album: spotify.SimpleAlbum{Name: album},
	}
}

// searchResult wraps tracks into a SearchResult page.
func searchResult(tracks ...spotify.FullTrack) *spotify.SearchResult {
	return &spotify.SearchResult{
		Tracks: &spotify.FullTrackPage{Tracks: tracks},
	}
}

// noDevices configures a mock whose device list is empty.
func noDevices() func(ctx context.Context) ([]spotify.PlayerDevice, error) {
	return func(ctx context.Context) ([]spotify.PlayerDevice, error) {
		return []spotify.PlayerDevice{}, nil
	}
}
