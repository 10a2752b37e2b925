package configs

// Config holds all configuration for the analyzer.
type Config struct {
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Analyze AnalyzeConfig `mapstructure:"analyze"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	Size int    `mapstructure:"size" validate:"required,min=1"` // top-N cutoff
	Dir  string `mapstructure:"dir" validate:"required"`
}

// LogConfig holds nginx access-log input configuration.
type LogConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// AnalyzeConfig holds parse tolerance configuration.
type AnalyzeConfig struct {
	// MaxErrorRatio is the parse-error fraction above which the run
	// is flagged as degraded. The run still completes.
	MaxErrorRatio float64 `mapstructure:"max_error_ratio" validate:"min=0,max=1"`
}

// LoggingConfig holds process logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required"`
	// File routes the process log to a file when set; stdout otherwise.
	File string `mapstructure:"file"`
}
