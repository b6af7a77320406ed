package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/galacticquest/internal/flagx"
	"github.com/dmitrijs2005/galacticquest/internal/timex"
)

// JsonConfig is the on-disk form of Config. RequestTimeout accepts either a
// duration string like "5s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	ExportDir          string         `json:"export_dir"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Without that flag nothing happens. Read and decode errors panic. Empty
// values in the file keep what cfg already holds.
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

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
