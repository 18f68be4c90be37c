// Package config loads converter configuration from command-line flags,
// environment variables and .env files.
package config

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainerrors "github.com/wp2ghost/wp2ghost/internal/errors"
	"github.com/wp2ghost/wp2ghost/internal/validation"
)

// UsageLine is the one-line synopsis printed on usage errors.
const UsageLine = "usage: wp2ghost [flags] <wordpress-export.xml> <output.json> [--redirect]"

// ErrUsage is returned when the positional arguments are missing or extra.
var ErrUsage = domainerrors.Validation(UsageLine)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Convert ConvertConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `name:"env" validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `name:"log-level" validate:"required,oneof=debug info warn error"`
}

// ConvertConfig describes one conversion run.
type ConvertConfig struct {
	Input  string `name:"input" validate:"required"`
	Output string `name:"output" validate:"required,nefield=Input"`

	// WriteRedirects is set by --redirect.
	WriteRedirects bool
	RedirectsFile  string `name:"redirects-file" validate:"required"`

	// GenerateMissingSlugs derives slugs from titles instead of dropping
	// slugless posts (default: false).
	GenerateMissingSlugs bool
	// IncludeUsers keeps WordPress authors in the document (default: true).
	IncludeUsers bool
}

// RedirectsPath returns the redirects file to write, or "" when redirects
// were not requested.
func (c ConvertConfig) RedirectsPath() string {
	if !c.WriteRedirects {
		return ""
	}
	return c.RedirectsFile
}

type flagValues struct {
	env           *string
	logLevel      *string
	envFile       *string
	generateSlugs *tristateBool
	users         *tristateBool
	redirectsFile *string
	redirect      *bool
}

func newFlagSet(out io.Writer) (*flag.FlagSet, *flagValues) {
	fs := flag.NewFlagSet("wp2ghost", flag.ContinueOnError)
	fs.SetOutput(out)

	v := &flagValues{
		env:           fs.String("env", "", "Environment (development, staging, production)"),
		logLevel:      fs.String("log-level", "", "Log level (debug, info, warn, error)"),
		envFile:       fs.String("env-file", ".env", "Path to .env file"),
		generateSlugs: &tristateBool{},
		users:         &tristateBool{},
		redirectsFile: fs.String("redirects-file", "", "Redirects output path (default: redirects.json)"),
		redirect:      fs.Bool("redirect", false, "Also write the redirects file"),
	}
	fs.Var(v.generateSlugs, "generate-slugs", "Generate slugs for posts without one (default: false)")
	fs.Var(v.users, "users", "Include WordPress authors as Ghost users; -users=false drops them (default: true)")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), UsageLine) //nolint:errcheck // usage output
		fs.PrintDefaults()
	}
	return fs, v
}

// tristateBool is a boolean flag that remembers whether it was given, so an
// unset flag falls through to the environment. The bare form means true.
type tristateBool struct {
	set   bool
	value bool
}

func (b *tristateBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

// String returns "" while unset.
func (b *tristateBool) String() string {
	if b == nil || !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *tristateBool) IsBoolFlag() bool { return true }

// Usage writes the synopsis and flag defaults to w.
func Usage(w io.Writer) {
	fs, _ := newFlagSet(w)
	fs.Usage()
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
//
// args excludes the program name. Flags may appear before, between or
// after the two positional paths.
func LoadConfig(args []string) (*Config, error) {
	fs, flags := newFlagSet(io.Discard)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, ErrUsage.WithCause(err)
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != 2 {
		return nil, ErrUsage
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*flags.envFile) //nolint:errcheck // optional file

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*flags.env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getConfigValue(*flags.logLevel, "LOG_LEVEL", "info")),
		},
		Convert: ConvertConfig{
			Input:                positional[0],
			Output:               positional[1],
			WriteRedirects:       *flags.redirect,
			RedirectsFile:        getConfigValue(*flags.redirectsFile, "WP2GHOST_REDIRECTS_FILE", "redirects.json"),
			GenerateMissingSlugs: getBoolConfigValue(flags.generateSlugs.String(), "WP2GHOST_GENERATE_SLUGS", false),
			IncludeUsers:         getBoolConfigValue(flags.users.String(), "WP2GHOST_INCLUDE_USERS", true),
		},
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Convert.Input, &c.Convert.Output, &c.Convert.RedirectsFile} {
		expanded, err := expandPath(*p)
		if err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeValidation, "invalid path %q", *p)
		}
		*p = expanded
	}
	return nil
}

// expandPath expands ~ and makes the path absolute. Empty stays empty.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Variables already in the environment win over the file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
