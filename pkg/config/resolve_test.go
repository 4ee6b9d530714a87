package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "qistctl"}
	cmd.PersistentFlags().String("api-url", "", "")
	cmd.PersistentFlags().String("token", "", "")
	cmd.PersistentFlags().String("profile", "", "")
	return cmd
}

func writeConfig(t *testing.T, f *File) {
	t.Helper()
	if err := Save(f); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QISTCTL_API_URL", "")
	t.Setenv("QISTCTL_TOKEN", "")
	writeConfig(t, &File{
		Active: "prod",
		Profiles: map[string]Profile{
			"prod": {Name: "prod", APIURL: "https://api.example.com", Token: "profile-tok"},
		},
		Version: 1,
	})

	cmd := newTestCmd()
	r, err := Resolve(cmd)
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", r.APIURL)
	require.Equal(t, "profile-tok", r.Token)
	require.Equal(t, "prod", r.Profile)

	// Env beats profile.
	t.Setenv("QISTCTL_API_URL", "https://env.example.com")
	t.Setenv("QISTCTL_TOKEN", "env-tok")
	r, err = Resolve(cmd)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", r.APIURL)
	require.Equal(t, "env-tok", r.Token)

	// Flag beats env.
	cmd.PersistentFlags().Set("api-url", "https://flag.example.com")
	cmd.PersistentFlags().Set("token", "flag-tok")
	r, err = Resolve(cmd)
	require.NoError(t, err)
	require.Equal(t, "https://flag.example.com", r.APIURL)
	require.Equal(t, "flag-tok", r.Token)
}

func TestResolveProfileFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QISTCTL_API_URL", "")
	t.Setenv("QISTCTL_TOKEN", "")
	writeConfig(t, &File{
		Active: "prod",
		Profiles: map[string]Profile{
			"prod":    {Name: "prod", APIURL: "https://prod.example.com"},
			"staging": {Name: "staging", APIURL: "https://staging.example.com"},
		},
		Version: 1,
	})
	cmd := newTestCmd()
	cmd.PersistentFlags().Set("profile", "staging")
	r, err := Resolve(cmd)
	require.NoError(t, err)
	require.Equal(t, "https://staging.example.com", r.APIURL)
	require.Equal(t, "staging", r.Profile)
}

func TestResolveMissingURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QISTCTL_API_URL", "")
	t.Setenv("QISTCTL_TOKEN", "")
	_, err := Resolve(newTestCmd())
	require.Error(t, err)
}

func TestTokenStoreRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := TokenStore{Profile: "dev"}
	if tok, err := store.Load(); err != nil || tok != "" {
		t.Fatalf("fresh load: %q %v", tok, err)
	}
	if err := store.Save("tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok, _ := store.Load(); tok != "tok-1" {
		t.Fatalf("load=%q", tok)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tok, _ := store.Load(); tok != "" {
		t.Fatalf("after clear: %q", tok)
	}

	// Other profile data survives token writes.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Profiles["dev"].Name != "dev" {
		t.Fatalf("profile=%+v", cfg.Profiles["dev"])
	}
}

func TestTokenStoreDefaultsToActive(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	writeConfig(t, &File{
		Active:   "prod",
		Profiles: map[string]Profile{"prod": {Name: "prod", APIURL: "https://p.example.com"}},
		Version:  1,
	})
	store := TokenStore{}
	if err := store.Save("tok-x"); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Profiles["prod"].Token != "tok-x" {
		t.Fatalf("profiles=%+v", cfg.Profiles)
	}
	if cfg.Profiles["prod"].APIURL != "https://p.example.com" {
		t.Fatalf("url clobbered: %+v", cfg.Profiles["prod"])
	}
}
