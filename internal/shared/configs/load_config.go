package configs

import (
	"fmt"
	"strings"

	"nginx-report/internal/shared/validators"

	"github.com/spf13/viper"
)

// Defaults mirror the built-in configuration the tool runs with when no
// config file is supplied.
const (
	defaultReportSize    = 1000
	defaultReportDir     = "./reports"
	defaultLogDir        = "./log"
	defaultMaxErrorRatio = 0.1
	defaultLogLevel      = "debug"
)

// LoadConfig reads configuration from file, applies defaults, and
// validates the result. An empty configPath loads the defaults only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("report.size", defaultReportSize)
	v.SetDefault("report.dir", defaultReportDir)
	v.SetDefault("log.dir", defaultLogDir)
	v.SetDefault("analyze.max_error_ratio", defaultMaxErrorRatio)
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "report.size")
	if e.Namespace() != "" {
		// Extract nested field path (e.g., "Config.report.size" -> "report.size")
		parts := strings.Split(e.Namespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix
			field = strings.Join(parts[1:], ".")
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
