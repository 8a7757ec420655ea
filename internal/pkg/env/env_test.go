package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallbackChain(t *testing.T) {
	values = map[string]string{"APP_PORT": "4100"}
	t.Cleanup(func() { values = nil })

	assert.Equal(t, "4100", GetEnv("APP_PORT", "4000"))

	t.Setenv("DB_HOST", "db.internal")
	assert.Equal(t, "db.internal", GetEnv("DB_HOST", "127.0.0.1"))

	assert.Equal(t, "3306", GetEnv("DB_PORT", "3306"))
}

func TestSetupEnvFileMissingFileIsNotFatal(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	SetupEnvFile()
	assert.Equal(t, "fallback", GetEnv("NOT_SET_ANYWHERE", "fallback"))
}
