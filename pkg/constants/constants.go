package constants

// Config file discovery defaults used by config.ReadConfig.
const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
)
