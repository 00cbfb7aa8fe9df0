// Package config loads runtime configuration for the EMS client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. EMS_* environment variables, after loading a dotenv file selected by
//     -e/-env (default ./.env).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      notification poll interval (seconds)
//	-d string   local session database path
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://ems.example.com/api",
//	  "paths": {"employees": "/v2/employees"},
//	  "max_upload_bytes": 10485760,
//	  "document_extensions": [".pdf", ".png"],
//	  "notification_interval": "30s",
//	  "request_timeout": "15s",
//	  "db_path": "emsdesk.db",
//	  "log_level": "info"
//	}
package config
