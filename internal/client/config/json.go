package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/emsdesk/internal/flagx"
	"github.com/dmitrijs2005/emsdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration so they can be written as "30s" or as nanoseconds.
type JsonConfig struct {
	APIBaseURL           string         `json:"api_base_url"`
	Paths                *Paths         `json:"paths"`
	MaxUploadBytes       int64          `json:"max_upload_bytes"`
	DocumentExtensions   []string       `json:"document_extensions"`
	ImageExtensions      []string       `json:"image_extensions"`
	NotificationInterval timex.Duration `json:"notification_interval"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	DBPath               string         `json:"db_path"`
	PreviewDir           string         `json:"preview_dir"`
	LogLevel             string         `json:"log_level"`
	LogFile              string         `json:"log_file"`
}

// parseJson overlays cfg with the fields set in the file named by -c or
// -config. Absent fields keep their current value. Read and decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.Paths != nil {
		cfg.Paths = mergePaths(cfg.Paths, *jc.Paths)
	}
	if jc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}
	if len(jc.DocumentExtensions) > 0 {
		cfg.DocumentExtensions = jc.DocumentExtensions
	}
	if len(jc.ImageExtensions) > 0 {
		cfg.ImageExtensions = jc.ImageExtensions
	}
	if jc.NotificationInterval.Duration > 0 {
		cfg.NotificationInterval = jc.NotificationInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.PreviewDir != "" {
		cfg.PreviewDir = jc.PreviewDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}

func mergePaths(base, override Paths) Paths {
	pick := func(cur, next string) string {
		if next != "" {
			return next
		}
		return cur
	}
	return Paths{
		Auth:          pick(base.Auth, override.Auth),
		Employees:     pick(base.Employees, override.Employees),
		Leaves:        pick(base.Leaves, override.Leaves),
		Documents:     pick(base.Documents, override.Documents),
		Rotas:         pick(base.Rotas, override.Rotas),
		Attendance:    pick(base.Attendance, override.Attendance),
		Notifications: pick(base.Notifications, override.Notifications),
		Departments:   pick(base.Departments, override.Departments),
		Organizations: pick(base.Organizations, override.Organizations),
		Dashboard:     pick(base.Dashboard, override.Dashboard),
		Search:        pick(base.Search, override.Search),
		SMTP:          pick(base.SMTP, override.SMTP),
		Alerts:        pick(base.Alerts, override.Alerts),
	}
}
