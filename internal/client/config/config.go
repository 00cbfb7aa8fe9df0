package config

import "time"

// Paths are the per-resource suffixes appended to Config.APIBaseURL.
type Paths struct {
	Auth          string `json:"auth"`
	Employees     string `json:"employees"`
	Leaves        string `json:"leaves"`
	Documents     string `json:"documents"`
	Rotas         string `json:"rotas"`
	Attendance    string `json:"attendance"`
	Notifications string `json:"notifications"`
	Departments   string `json:"departments"`
	Organizations string `json:"organizations"`
	Dashboard     string `json:"dashboard"`
	Search        string `json:"search"`
	SMTP          string `json:"smtp"`
	Alerts        string `json:"alerts"`
}

// Config holds runtime settings for the EMS client.
//
// Units: MaxUploadBytes is in bytes; the two intervals are time.Duration.
type Config struct {
	APIBaseURL string
	Paths      Paths

	MaxUploadBytes     int64
	DocumentExtensions []string
	ImageExtensions    []string

	NotificationInterval time.Duration
	RequestTimeout       time.Duration

	DBPath     string
	PreviewDir string
	LogLevel   string
	LogFile    string
}

func DefaultPaths() Paths {
	return Paths{
		Auth:          "/auth",
		Employees:     "/employees",
		Leaves:        "/leaves",
		Documents:     "/documents",
		Rotas:         "/rotas",
		Attendance:    "/attendance",
		Notifications: "/notifications",
		Departments:   "/departments",
		Organizations: "/organizations",
		Dashboard:     "/dashboard",
		Search:        "/search",
		SMTP:          "/smtp-config",
		Alerts:        "/alert-config",
	}
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.Paths = DefaultPaths()
	c.MaxUploadBytes = 10 << 20
	c.DocumentExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"}
	c.ImageExtensions = []string{".jpg", ".jpeg", ".png"}
	c.NotificationInterval = 30 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.DBPath = "emsdesk.db"
	c.PreviewDir = "preview"
	c.LogLevel = "info"
	c.LogFile = "emsdesk.log"
}

// LoadConfig builds a Config from defaults, then the environment (including
// a dotenv file), then an optional JSON file, then command-line flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
