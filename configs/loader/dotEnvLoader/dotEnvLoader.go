package dotEnvLoader

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DotEnvLoader reads a .env file when present and lets the process
// environment override it.
type DotEnvLoader struct {
	Path string
}

func (l DotEnvLoader) Load() (map[string]string, error) {
	path := l.Path
	if path == "" {
		path = ".env"
	}

	envs := make(map[string]string)
	if fileEnvs, err := godotenv.Read(path); err == nil {
		for key, value := range fileEnvs {
			envs[key] = value
		}
	}

	for _, pair := range os.Environ() {
		if key, value, ok := strings.Cut(pair, "="); ok {
			envs[key] = value
		}
	}

	return envs, nil
}
