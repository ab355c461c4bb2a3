package config

// EngineConfig holds the settings used to construct a pkg/engine
// Coordinator from the command line.
type EngineConfig struct {
	Workers   int    // worker goroutine count (default: runtime.NumCPU())
	LogLevel  string // log level: debug, info, warn, error
	LogFormat string // log format: text, json
}

// DefaultEngineConfig returns sensible defaults. Workers is left at 0,
// meaning "use runtime.NumCPU()" — the caller resolves that, since
// config packages stay free of runtime introspection.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Workers:   0,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// AdminConfig holds configuration for the read-only introspection
// server exposing a running Coordinator's queue depth and utilization.
type AdminConfig struct {
	Addr      string // listen address, e.g. ":8090"
	LogLevel  string
	LogFormat string
}

// DefaultAdminConfig returns sensible defaults.
func DefaultAdminConfig() AdminConfig {
	return AdminConfig{
		Addr:      ":8090",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// DiagnosticsConfig holds configuration for the optional SQLite-backed
// event sink. An empty Path disables persistence entirely and callers
// should fall back to the engine's no-op sink.
type DiagnosticsConfig struct {
	Path string // SQLite database path, or "" to disable, ":memory:" for tests
}

// DefaultDiagnosticsConfig returns sensible defaults: diagnostics
// disabled.
func DefaultDiagnosticsConfig() DiagnosticsConfig {
	return DiagnosticsConfig{Path: ""}
}
