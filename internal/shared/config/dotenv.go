package config

import (
	"os"
	"strings"
)

// loadEnvFiles applies KEY=VALUE pairs from whichever of the given files
// exist, so PORT, ANALYZER_BASE_URL and friends can live in a local .env
// during development. Variables already present in the environment win;
// malformed lines are skipped silently.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			os.Setenv(key, strings.Trim(strings.TrimSpace(val), `"`))
		}
	}
}
