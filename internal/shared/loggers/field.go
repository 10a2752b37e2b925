package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldLogFile    = "log_file"
	FieldLogDate    = "log_date"
	FieldReportKey  = "report_key"
	FieldDuration   = "duration"
	FieldErrorCode  = "error_code"
	FieldErrorStack = "error_stack"

	FieldTotalLines = "total_lines"
	FieldErrorLines = "error_lines"
)
