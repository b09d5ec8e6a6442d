// Package config reads the front desk's settings from flags, the environment
// and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"

	"frontdesk/pkg/frontdesk/i18n"
)

// Environment variable names.
const (
	EnvManagerUsername = "FRONTDESK_MANAGER_USERNAME"
	EnvManagerPassword = "FRONTDESK_MANAGER_PASSWORD"
	EnvLang            = "FRONTDESK_LANG"
	EnvNoColor         = "FRONTDESK_NO_COLOR"
)

// Defaults for the manager credential stub.
const (
	DefaultManagerUsername = "manager123"
	DefaultManagerPassword = "admin123"
	DefaultLang            = "en"
	defaultEnvFile         = ".env"
)

// Credentials is the single hardcoded manager login. It is a placeholder,
// not a credential store.
type Credentials struct {
	Username string
	Password string
}

// UsernameMatches reports whether s is the manager username.
func (c Credentials) UsernameMatches(s string) bool {
	return s == c.Username
}

// PasswordMatches reports whether s is the manager password.
func (c Credentials) PasswordMatches(s string) bool {
	return s == c.Password
}

// Config holds the resolved settings.
type Config struct {
	Lang        string
	NoColor     bool
	EnvFile     string
	Credentials Credentials
}

// Load resolves settings. Precedence is flags, then the process environment
// (via lookup), then the .env file, then defaults. A missing default .env is
// ignored; a missing file named with -env is an error.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	flags := flag.NewFlagSet("frontdesk", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	lang := flags.String("lang", "", "interface language ("+fmt.Sprint(i18n.Supported)+")")
	noColor := flags.Bool("no-color", false, "disable colored output")
	envFile := flags.String("env", "", "dotenv file to read settings from (default .env if present)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	dotenv, err := readEnvFile(*envFile)
	if err != nil {
		return nil, err
	}

	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v, ok := dotenv[key]; ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Lang:    get(EnvLang, DefaultLang),
		EnvFile: *envFile,
		Credentials: Credentials{
			Username: get(EnvManagerUsername, DefaultManagerUsername),
			Password: get(EnvManagerPassword, DefaultManagerPassword),
		},
	}

	if *lang != "" {
		cfg.Lang = *lang
	}
	if !slices.Contains(i18n.Supported, cfg.Lang) {
		return nil, fmt.Errorf("config: language %q: %w", cfg.Lang, i18n.ErrUnsupportedLanguage)
	}

	cfg.NoColor = *noColor
	if v := get(EnvNoColor, ""); v != "" && !cfg.NoColor {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", EnvNoColor, v, err)
		}
		cfg.NoColor = b
	}

	return cfg, nil
}

func readEnvFile(name string) (map[string]string, error) {
	explicit := name != ""
	if !explicit {
		name = defaultEnvFile
	}

	values, err := godotenv.Read(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", name, err)
	}
	return values, nil
}
