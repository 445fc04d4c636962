// Package config loads the function's local properties file.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Property keys recognized in the properties file.
const (
	KeySecretName   = "secret.manager.name"
	KeySecretRegion = "secret.manager.region"
	KeyDBDriver     = "db.driver"
	KeyURITemplate  = "db.uri.template"
)

const (
	DefaultDBDriver    = "pgx"
	DefaultURITemplate = "postgres://{0}:{1}/{2}"
)

// Config is the secret-store location plus optional database settings.
// It is not modified after Load returns.
type Config struct {
	SecretName   string
	SecretRegion string
	DBDriver     string
	URITemplate  string
}

// Error reports a missing, unreadable or incomplete properties file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads the key=value properties file at path. Both secret-store keys are
// required; a missing or empty value is an error.
func Load(path string) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return nil, &Error{Path: path, Err: errors.Wrap(err, "read properties")}
	}

	sec := f.Section(ini.DefaultSection)

	name, err := required(sec, KeySecretName)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	region, err := required(sec, KeySecretRegion)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	return &Config{
		SecretName:   name,
		SecretRegion: region,
		DBDriver:     sec.Key(KeyDBDriver).MustString(DefaultDBDriver),
		URITemplate:  sec.Key(KeyURITemplate).MustString(DefaultURITemplate),
	}, nil
}

func required(sec *ini.Section, key string) (string, error) {
	if !sec.HasKey(key) {
		return "", errors.Errorf("missing required property %q", key)
	}
	v := strings.TrimSpace(sec.Key(key).String())
	if v == "" {
		return "", errors.Errorf("empty required property %q", key)
	}
	return v, nil
}
