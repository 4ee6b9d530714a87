package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Resolved is the effective connection after flag > env > profile
// precedence.
type Resolved struct {
	APIURL  string
	Token   string
	Profile string
}

// Resolve computes the connection for a command invocation. The token may be
// empty; commands that need a session check that themselves.
func Resolve(cmd *cobra.Command) (Resolved, error) {
	flagURL, _ := cmd.Root().PersistentFlags().GetString("api-url")
	flagToken, _ := cmd.Root().PersistentFlags().GetString("token")

	envURL := os.Getenv("QISTCTL_API_URL")
	envToken := os.Getenv("QISTCTL_TOKEN")

	cfg, err := Load()
	if err != nil {
		cfg = &File{Profiles: map[string]Profile{}}
	}
	prof := cfg.Active
	if p, _ := cmd.Root().PersistentFlags().GetString("profile"); p != "" {
		prof = p
	}
	cp := cfg.Profiles[prof]

	url := firstNonEmpty(flagURL, envURL, cp.APIURL)
	tok := firstNonEmpty(flagToken, envToken, cp.Token)
	if url == "" {
		return Resolved{}, fmt.Errorf("API URL not set (flag/env/config)")
	}

	return Resolved{
		APIURL:  url,
		Token:   tok,
		Profile: prof,
	}, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
