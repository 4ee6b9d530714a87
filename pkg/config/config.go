package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Profile is one saved backend connection.
type Profile struct {
	Name   string `json:"name"`
	APIURL string `json:"apiUrl"`
	Token  string `json:"token"`
}

// File is the on-disk shape of ~/.qistctl/config.json.
type File struct {
	Active   string             `json:"active"`
	Profiles map[string]Profile `json:"profiles"`
	Version  int                `json:"version"`
}

func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".qistctl")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func Load() (*File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{Active: "default", Profiles: map[string]Profile{}, Version: 1}, nil
		}
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	if f.Active == "" {
		f.Active = "default"
	}
	if f.Version == 0 {
		f.Version = 1
	}
	return &f, nil
}

func Save(f *File) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// TokenStore reads and writes the token of one profile. It satisfies the
// session manager's Store interface so the console session survives runs.
type TokenStore struct {
	Profile string
}

func (s TokenStore) Load() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	return cfg.Profiles[s.profile(cfg)].Token, nil
}

func (s TokenStore) Save(token string) error {
	return s.update(func(p *Profile) { p.Token = token })
}

func (s TokenStore) Clear() error {
	return s.update(func(p *Profile) { p.Token = "" })
}

func (s TokenStore) update(mut func(*Profile)) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	name := s.profile(cfg)
	p := cfg.Profiles[name]
	p.Name = name
	mut(&p)
	cfg.Profiles[name] = p
	return Save(cfg)
}

func (s TokenStore) profile(cfg *File) string {
	if s.Profile != "" {
		return s.Profile
	}
	return cfg.Active
}
