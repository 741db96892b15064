package config

import (
	"log"
	"os"

	"github.com/lixenwraith/flip-rider/core"
)

// Setup starts logging for the debug flag, then loads path so its messages reach the log.
// A file that sets debug while the flag does not turns logging on after the load.
// The returned file is nil when logging is disabled; the caller closes it.
func Setup(path string, debug bool) (Config, *os.File, error) {
	logFile := core.SetupLogging(debug)

	cfg, err := Load(path)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return Config{}, nil, err
	}

	cfg.Debug = cfg.Debug || debug
	if cfg.Debug && logFile == nil {
		logFile = core.SetupLogging(true)
	}

	source := path
	if source == "" {
		source = "defaults"
	}
	log.Printf("Config %s: seed %d, input %s, audio %v", source, cfg.Seed, cfg.Input.Mode, cfg.Audio.Enabled)
	return cfg, logFile, nil
}
