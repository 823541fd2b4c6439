package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/webstash/internal/flagx"
	"github.com/dmitrijs2005/webstash/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	TipRotationInterval timex.Duration `json:"tip_rotation_interval"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. When no flag is given, nothing is loaded. Read or
// unmarshal errors panic; the CLI treats a broken config file as fatal.
// Only fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.TipRotationInterval.Duration != 0 {
		cfg.TipRotationInterval = time.Duration(jc.TipRotationInterval.Duration)
	}
}
