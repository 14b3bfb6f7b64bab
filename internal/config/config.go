package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty, which keeps todos and calculators in memory.
	DefaultDatabaseURL = ""

	// DefaultLogFormat is the default log output format.
	DefaultLogFormat = "json"
)
