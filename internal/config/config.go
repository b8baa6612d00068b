package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "dev.conf"

// ErrConfig marks every failure to produce a usable configuration.
var ErrConfig = errors.New("config error")

// MissingKeyError reports an absent section or key.
type MissingKeyError struct {
	Section string
	Key     string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing config key %s.%s", e.Section, e.Key)
}

// Is lets errors.Is(err, ErrConfig) match missing keys.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrConfig
}

// File is a parsed section/key configuration file.
type File struct {
	path string
	ini  *ini.File
}

// Config holds the settings consumed by a single run.
type Config struct {
	URL      string
	Keywords []string
}

// Open parses the file at path. A missing or unreadable file is an error.
func Open(path string) (*File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	return &File{path: path, ini: f}, nil
}

// Get returns the raw value stored under section/key. The section must
// exist; a key it lacks is looked up in the DEFAULT section.
func (f *File) Get(section, key string) (string, error) {
	sec, err := f.ini.GetSection(section)
	if err != nil {
		return "", &MissingKeyError{Section: section, Key: key}
	}
	if sec.HasKey(key) {
		return sec.Key(key).String(), nil
	}
	if def, err := f.ini.GetSection(ini.DefaultSection); err == nil && def.HasKey(key) {
		return def.Key(key).String(), nil
	}
	return "", &MissingKeyError{Section: section, Key: key}
}

// Load reads the api url and the filter keywords from path.
func Load(path string) (*Config, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}

	url, err := f.Get("api", "url")
	if err != nil {
		return nil, err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("%w: api.url must not be empty", ErrConfig)
	}

	raw, err := f.Get("filter", "keyword")
	if err != nil {
		return nil, err
	}

	return &Config{
		URL:      url,
		Keywords: splitAndTrim(raw),
	}, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
