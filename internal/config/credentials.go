package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"strava-dashboard/internal/apperr"
)

// Credential keys looked up in the .env file and the process environment
const (
	KeyClientID     = "STRAVA_CLIENT_ID"
	KeyClientSecret = "STRAVA_CLIENT_SECRET"
	KeyRefreshToken = "STRAVA_REFRESH_TOKEN"

	envFileName = ".env"
)

// Credentials identifies the application and the athlete for one run.
// Values are never logged.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// CredentialSource describes where credentials are looked up. The .env file
// next to the program wins over one in the working directory; process
// environment variables override both.
type CredentialSource struct {
	ProgramDir string
	WorkingDir string
}

// DefaultCredentialSource uses the directory of the running executable and
// the current working directory
func DefaultCredentialSource() CredentialSource {
	var src CredentialSource
	if exe, err := os.Executable(); err == nil {
		src.ProgramDir = filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		src.WorkingDir = wd
	}
	return src
}

// LoadCredentials resolves credentials from the default source
func LoadCredentials() (*Credentials, error) {
	return DefaultCredentialSource().Resolve()
}

// Resolve reads the credential triple. Every missing key is reported at once,
// together with the locations that were searched.
func (s CredentialSource) Resolve() (*Credentials, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()

	searched := s.candidates()
	for _, path := range searched {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				continue
			}
			return nil, apperr.Configuration(apperr.StageResolve, err, "failed to read %s", path)
		}
		break
	}

	creds := &Credentials{
		ClientID:     strings.TrimSpace(v.GetString(KeyClientID)),
		ClientSecret: strings.TrimSpace(v.GetString(KeyClientSecret)),
		RefreshToken: strings.TrimSpace(v.GetString(KeyRefreshToken)),
	}

	var missingVars []string
	if creds.ClientID == "" {
		missingVars = append(missingVars, KeyClientID)
	}
	if creds.ClientSecret == "" {
		missingVars = append(missingVars, KeyClientSecret)
	}
	if creds.RefreshToken == "" {
		missingVars = append(missingVars, KeyRefreshToken)
	}

	if len(missingVars) > 0 {
		return nil, apperr.Configuration(apperr.StageResolve, nil,
			"missing required variables: %s. Add them to your %s file. Looked for %s at: %s",
			strings.Join(missingVars, ", "), envFileName, envFileName, strings.Join(searched, " and "))
	}

	return creds, nil
}

func (s CredentialSource) candidates() []string {
	var paths []string
	if s.ProgramDir != "" {
		paths = append(paths, filepath.Join(s.ProgramDir, envFileName))
	}
	if s.WorkingDir != "" {
		wd := filepath.Join(s.WorkingDir, envFileName)
		if len(paths) == 0 || paths[0] != wd {
			paths = append(paths, wd)
		}
	}
	return paths
}
