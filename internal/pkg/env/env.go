package env

import (
	"os"

	"github.com/joho/godotenv"
)

var values map[string]string

// GetEnv returns the value for key from the loaded .env file, falling
// back to the process environment and then to def. The process
// environment keeps containerized runs working without a .env file.
func GetEnv(key, def string) string {
	if val, ok := values[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the .env file from the working directory or from
// the repository root when a binary is started inside cmd/<name>.
// A missing file is not an error: configuration then comes from the
// process environment alone.
func SetupEnvFile() {
	for _, envFile := range []string{".env", "../../.env"} {
		if loaded, err := godotenv.Read(envFile); err == nil {
			values = loaded
			return
		}
	}
}
