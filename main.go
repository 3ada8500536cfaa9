//
// Date: 2026-08-19
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Spotify agent tool server. Exposes search, playback
// control, playlists, volume, playback status, and user profile as
// named actions over an HTTP API for agent frameworks, with a CLI
// mode for one-shot use.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// main is the entry point for the application. It handles
// authentication and then either runs a one-shot CLI action or starts
// the API server.
func main() {
	// Parse command line flags
	serverMode := flag.Bool("server", false, "Run the HTTP API server for agent access")
	searchFlag := flag.String("search", "", "Search for tracks and exit")
	playFlag := flag.String("play", "", "Play the best match for a track query")
	pauseFlag := flag.Bool("pause", false, "Pause playback")
	resumeFlag := flag.Bool("resume", false, "Resume playback")
	nextFlag := flag.Bool("next", false, "Skip to the next track")
	prevFlag := flag.Bool("prev", false, "Return to the previous track")
	volumeFlag := flag.Int("volume", -1, "Set playback volume (0-100)")
	statusFlag := flag.Bool("status", false, "Show current playback status")
	meFlag := flag.Bool("me", false, "Show the authenticated user")
	playlistsFlag := flag.Bool("playlists", false, "List your Spotify playlists and exit")
	devicesFlag := flag.Bool("devices", false, "List available Spotify Connect devices and exit")
	flag.Parse()

	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	// Get credentials from environment variables
	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	redirectURI := os.Getenv("SPOTIFY_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}

	if clientID == "" || clientSecret == "" {
		log.Fatal("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	tokenFile = os.Getenv("SPOTIFY_TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = defaultTokenFile
	}

	auth = newAuthenticator(clientID, clientSecret, redirectURI)

	if *serverMode {
		apiAccessToken = os.Getenv("API_ACCESS_TOKEN")
		if apiAccessToken == "" {
			log.Fatal("API_ACCESS_TOKEN environment variable is required in server mode")
		}

		// A saved token lets the server start pre-authenticated;
		// otherwise agents hit /auth first.
		if client, err := loadToken(); err == nil {
			ops = NewOperations(client)
		}

		startAPIServer()
		return
	}

	ctx := context.Background()

	// Try to load existing token
	client, err := loadToken()
	if err != nil {
		// No valid token, need to authenticate
		client = authenticate()
	}

	ops = NewOperations(client)

	// Verify authentication, re-running the OAuth flow on a stale token
	user, fail := ops.GetCurrentUser(ctx)
	if fail != nil {
		log.Printf("Token may be expired, re-authenticating: %v", fail)
		ops = NewOperations(authenticate())
		user, fail = ops.GetCurrentUser(ctx)
		if fail != nil {
			log.Fatalf("Failed to get user info: %v", fail)
		}
	}

	fmt.Printf("Authenticated as: %s\n", user.DisplayName)

	switch {
	case *searchFlag != "":
		tracks, fail := ops.Search(ctx, *searchFlag)
		exitOnFailure(fail)
		printTracksTable(tracks)

	case *playFlag != "":
		result, fail := ops.StartPlayback(ctx, *playFlag)
		exitOnFailure(fail)
		fmt.Printf("Playing %s by %s\n", result.Track, result.Artist)

	case *pauseFlag:
		result, fail := ops.PausePlayback(ctx)
		exitOnFailure(fail)
		fmt.Println(result.Status)

	case *resumeFlag:
		result, fail := ops.ResumePlayback(ctx)
		exitOnFailure(fail)
		fmt.Println(result.Status)

	case *nextFlag:
		result, fail := ops.NextTrack(ctx)
		exitOnFailure(fail)
		fmt.Println(result.Status)

	case *prevFlag:
		result, fail := ops.PreviousTrack(ctx)
		exitOnFailure(fail)
		fmt.Println(result.Status)

	case *volumeFlag >= 0:
		result, fail := ops.SetVolume(ctx, *volumeFlag)
		exitOnFailure(fail)
		fmt.Println(result.Status)

	case *statusFlag:
		status, fail := ops.GetCurrentPlayback(ctx)
		exitOnFailure(fail)
		printPlaybackStatus(status)

	case *meFlag:
		fmt.Printf("Display name: %s\nEmail: %s\nID: %s\n", user.DisplayName, user.Email, user.ID)

	case *playlistsFlag:
		playlists, fail := ops.GetUserPlaylists(ctx)
		exitOnFailure(fail)
		printPlaylistsTable(playlists)

	case *devicesFlag:
		devices, fail := ops.ListDevices(ctx)
		exitOnFailure(fail)
		printDevicesTable(devices)

	default:
		flag.Usage()
	}
}

// exitOnFailure prints an operation failure and exits non-zero.
func exitOnFailure(fail *OpError) {
	if fail == nil {
		return
	}
	color.Red(fail.Error())
	os.Exit(1)
}
