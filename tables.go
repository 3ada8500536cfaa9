//
// Date: 2026-08-19
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: CLI table rendering for devices, playlists, and search
// results.
//

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// printDevicesTable displays available Spotify devices in a formatted table
// with colors to indicate active status.
func printDevicesTable(devices []DeviceSummary) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("🎵 Available Spotify Connect Devices")
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Type", "Status", "Device ID"})

	for i, device := range devices {
		status := "Inactive"
		if device.Active {
			status = color.GreenString("● Active")
		}

		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(device.Name),
			device.Type,
			status,
			color.HiBlackString(device.ID),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total devices: %d\n", len(devices))
}

// printPlaylistsTable displays the user's Spotify playlists in a formatted table.
func printPlaylistsTable(playlists []PlaylistSummary) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("🎵 Your Spotify Playlists")
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Name", "Tracks", "Playlist ID"})

	for i, playlist := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			playlist.TracksTotal,
			color.HiBlackString(playlist.ID),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total playlists: %d\n", len(playlists))
}

// printTracksTable displays search results in a formatted table.
func printTracksTable(tracks []TrackSummary) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("🎵 Search Results")
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Artist", "Album", "URI"})

	for i, track := range tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(track.Name),
			track.Artist,
			track.Album,
			color.HiBlackString(track.URI),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Println()
	green.Printf("Total tracks: %d\n", len(tracks))
}

// printPlaybackStatus displays the current playback state.
func printPlaybackStatus(status *PlaybackStatus) {
	cyan := color.New(color.FgCyan)

	playing := "Paused"
	if status.IsPlaying {
		playing = color.GreenString("▶ Playing")
	}

	fmt.Println()
	cyan.Printf("%s — %s\n", status.TrackName, status.Artist)
	fmt.Printf("Album: %s\n", status.Album)
	fmt.Printf("Status: %s (%s / %s)\n", playing,
		formatMillis(status.ProgressMs), formatMillis(status.DurationMs))
}

// formatMillis renders a millisecond count as m:ss.
func formatMillis(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
