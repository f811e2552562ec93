// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog API - these keys configure the retrieval of video records.
const (
	APIKey      = "api.key"
	APIEndpoint = "api.endpoint"
	APIParts    = "api.parts"
	APITimeout  = "api.timeout"
)

// Formatting - these keys control how projected values are presented.
const (
	FormatLocale     = "format.locale"
	FormatTimezone   = "format.timezone"
	FormatTimeLayout = "format.time_layout"
)

// Export - these keys configure where raw records are written.
const (
	ExportDir = "export.dir"
)

// Recent identifiers - these keys manage the remembered lookup history.
const (
	RecentRemember = "recent.remember"
	RecentLimit    = "recent.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment.
const (
	TUIPrompt = "tui.prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite   = "logs.write"
	LogsLevel   = "logs.level"
	LogsJson    = "logs.json"
	LogsMaxSize = "logs.max_size"
	LogsMaxAge  = "logs.max_age"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
