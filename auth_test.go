//
// Date: 2026-08-20
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Unit tests for token persistence.
//

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

// TestSaveAndLoadToken tests token persistence.
func TestSaveAndLoadToken(t *testing.T) {
	tmpDir := t.TempDir()
	testTokenFile := filepath.Join(tmpDir, "test_token.json")

	// Save the original tokenFile and restore after test
	originalTokenFile := tokenFile
	tokenFile = testTokenFile
	defer func() { tokenFile = originalTokenFile }()

	testToken := &oauth2.Token{
		AccessToken:  "test-access-token",
		TokenType:    "Bearer",
		RefreshToken: "test-refresh-token",
	}

	saveToken(testToken)

	if _, err := os.Stat(testTokenFile); os.IsNotExist(err) {
		t.Fatal("token file was not created")
	}

	file, err := os.Open(testTokenFile)
	if err != nil {
		t.Fatalf("failed to open token file: %v", err)
	}
	defer file.Close()

	var loadedToken oauth2.Token
	if err := json.NewDecoder(file).Decode(&loadedToken); err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}

	if loadedToken.AccessToken != testToken.AccessToken {
		t.Errorf("expected access token %s, got %s", testToken.AccessToken, loadedToken.AccessToken)
	}
	if loadedToken.RefreshToken != testToken.RefreshToken {
		t.Errorf("expected refresh token %s, got %s", testToken.RefreshToken, loadedToken.RefreshToken)
	}
}
