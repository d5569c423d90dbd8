package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/pkg/logger"
	"github.com/joho/godotenv"
)

const (
	DefaultTemplatePath = "TEMPLATE.md"
	DefaultOutputPath   = "README.md"
	DefaultAPIBaseURL   = "https://api.github.com/"
	DefaultUserAgent    = "Get Cool People Action"
)

type Config struct {
	Run    RunConfig
	GitHub GitHubConfig
}

type RunConfig struct {
	Repo          string
	UsersPerRow   int
	TemplatePath  string
	OutputPath    string
	ExportPath    string
	StrictMarkers bool
}

type GitHubConfig struct {
	Token      string
	APIBaseURL string
	UserAgent  string
	// AuthScheme, when set, sends the token as "<scheme> <token>" through oauth2
	// instead of verbatim.
	AuthScheme string
}

// Load builds the configuration from the positional arguments
// (repo, token, usersPerRow, [templatePath]) plus the environment.
func Load(args []string) (Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file found, using environment variables")
	}

	if len(args) < 3 || len(args) > 4 {
		return Config{}, apperrors.Configuration("load config",
			"expected arguments: <repo> <token> <usersPerRow> [templatePath]")
	}

	usersPerRow, err := strconv.Atoi(strings.TrimSpace(args[2]))
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.KindConfiguration, "parse usersPerRow", err)
	}

	templatePath := DefaultTemplatePath
	if len(args) == 4 && args[3] != "" {
		templatePath = args[3]
	}

	cfg := Config{
		Run: RunConfig{
			Repo:          strings.TrimSpace(args[0]),
			UsersPerRow:   usersPerRow,
			TemplatePath:  templatePath,
			OutputPath:    getEnv("COOLPEOPLE_OUTPUT", DefaultOutputPath),
			ExportPath:    getEnv("COOLPEOPLE_XLSX", ""),
			StrictMarkers: getEnvAsBool("STRICT_MARKERS", false),
		},
		GitHub: GitHubConfig{
			Token:      args[1],
			APIBaseURL: getEnv("GITHUB_API_URL", DefaultAPIBaseURL),
			UserAgent:  DefaultUserAgent,
			AuthScheme: getEnv("GITHUB_AUTH_SCHEME", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would fail later in the pipeline.
func (c Config) Validate() error {
	if !ValidRepo(c.Run.Repo) {
		return apperrors.Configuration("validate config", "repo must be in the form owner/name, got "+strconv.Quote(c.Run.Repo))
	}
	if c.GitHub.Token == "" {
		return apperrors.Configuration("validate config", "token is required")
	}
	if c.Run.UsersPerRow <= 0 {
		return apperrors.Configuration("validate config", "usersPerRow must be a positive integer, got "+strconv.Itoa(c.Run.UsersPerRow))
	}
	return nil
}

// ValidRepo reports whether repo looks like owner/name.
func ValidRepo(repo string) bool {
	owner, name, ok := strings.Cut(repo, "/")
	return ok && owner != "" && name != "" && !strings.ContainsAny(name, "/ ") && !strings.Contains(owner, " ")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
