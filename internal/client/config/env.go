package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with EMS_* environment variables. A dotenv file
// (-e/-env, else ./.env) is loaded first; variables already set in the
// process environment win over the file. A missing file is skipped; any
// other read or parse error panics, as for the JSON file.
func parseEnv(cfg *Config) {
	envFile := flagx.EnvFileFlags()
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("load %s: %w", envFile, err))
	}

	if v := os.Getenv("EMS_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := envInt64("EMS_MAX_UPLOAD_BYTES"); ok {
		cfg.MaxUploadBytes = v
	}
	if v := envList("EMS_DOCUMENT_EXTENSIONS"); v != nil {
		cfg.DocumentExtensions = v
	}
	if v := envList("EMS_IMAGE_EXTENSIONS"); v != nil {
		cfg.ImageExtensions = v
	}
	if v, ok := envDuration("EMS_NOTIFICATION_INTERVAL"); ok {
		cfg.NotificationInterval = v
	}
	if v, ok := envDuration("EMS_REQUEST_TIMEOUT"); ok {
		cfg.RequestTimeout = v
	}
	if v := os.Getenv("EMS_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("EMS_PREVIEW_DIR"); v != "" {
		cfg.PreviewDir = v
	}
	if v := os.Getenv("EMS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EMS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func envInt64(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envDuration(key string) (time.Duration, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
