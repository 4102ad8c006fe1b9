package config

import (
	"encoding/json"
	"os"

	"github.com/dsavelev/filevault/internal/flagx"
	"github.com/dsavelev/filevault/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify delays either as strings like "500ms"
// or as integer nanoseconds.
type jsonConfig struct {
	DatabasePath   string         `json:"database_path"`
	KeyLength      int            `json:"key_length"`
	SaveRetryDelay timex.Duration `json:"save_retry_delay"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic (caller may recover if desired). Zero-value
// fields in the JSON leave the existing Config values untouched.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.KeyLength > 0 {
		cfg.KeyLength = jc.KeyLength
	}
	if jc.SaveRetryDelay.Duration > 0 {
		cfg.SaveRetryDelay = jc.SaveRetryDelay.Duration
	}
}
