package github

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TokenProvider obtains a GitHub authentication token from some source.
type TokenProvider interface {
	GetToken() (string, error)
}

// GhCliProvider shells out to the GitHub CLI (`gh auth token`). This is
// the preferred source as it respects the user's gh authentication state.
type GhCliProvider struct{}

// GetToken retrieves the current token from the gh CLI. It fails if gh
// is not installed, not authenticated, or the command itself fails.
func (g *GhCliProvider) GetToken() (string, error) {
	cmd := exec.Command("gh", "auth", "token", "--hostname", "github.com")
	output, err := cmd.Output()
	if err != nil {
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return "", errors.New("gh CLI not found in PATH")
		}
		return "", fmt.Errorf("gh auth token failed: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", errors.New("gh auth token returned empty token")
	}
	return token, nil
}

// EnvProvider reads the GITHUB_TOKEN environment variable, the fallback
// when the gh CLI is not available.
type EnvProvider struct{}

// GetToken reads GITHUB_TOKEN. It fails if the variable is unset or empty.
func (e *EnvProvider) GetToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", errors.New("GITHUB_TOKEN environment variable not set or empty")
	}
	return token, nil
}

// Token obtains a GitHub token, trying the gh CLI first and falling back
// to GITHUB_TOKEN. When both fail the error names both remedies.
func Token() (string, error) {
	ghCli := &GhCliProvider{}
	token, ghErr := ghCli.GetToken()
	if ghErr == nil {
		return token, nil
	}

	token, err := (&EnvProvider{}).GetToken()
	if err == nil {
		return token, nil
	}

	return "", fmt.Errorf(
		"failed to obtain GitHub token: gh CLI error (%v) and GITHUB_TOKEN not set.\n"+
			"Please either:\n"+
			"  1. Run 'gh auth login' to authenticate with GitHub CLI, or\n"+
			"  2. Set the GITHUB_TOKEN environment variable with a personal access token",
		ghErr,
	)
}
