package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDashDBType string = "DASH_DB_TYPE"
	EnvKeyDashDbPath string = "DASH_DB_PATH"

	EnvKeyDashHttpHostPort   string = "DASH_HTTP_HOST_PORT"
	EnvKeyDashStreamURL      string = "DASH_STREAM_URL"
	EnvKeyDashCommandBaseURL string = "DASH_COMMAND_BASE_URL"

	EnvKeyDashDefaultRate  string = "DASH_DEFAULT_RATE"
	EnvKeyDashDefaultBurst string = "DASH_DEFAULT_BURST"

	EnvKeyDashTargetUnits    string = "DASH_TARGET_UNITS"
	EnvKeyDashPlannedMinutes string = "DASH_PLANNED_MINUTES"

	EnvKeyDashLogPath string = "DASH_LOG_PATH"

	LoggerNameTelemetryCore  string = "telemetry_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameStreamClient   string = "stream_client"
	LoggerNameCommandClient  string = "command_client"
	LoggerFieldCategory      string = "category"
	LoggerCategoryDispatch   string = "dispatch"
	LoggerCategorySnapshot   string = "snapshot"
	LoggerCategoryAlert      string = "alert"
	LoggerCategoryDerived    string = "derived"
	LoggerCategoryProduction string = "production"
	LoggerCategoryThreshold  string = "threshold"
)
