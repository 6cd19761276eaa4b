package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env в окружение процесса. Уже заданные переменные не перезаписываются.
func Load(files ...string) error {
	return godotenv.Load(files...)
}

// ApplyFlags переносит флаги командной строки в окружение до config.Load:
// -port перекрывает PORT, -unit перекрывает DISPLAY_UNIT.
func ApplyFlags() error {
	overrides := map[string]*string{
		"PORT":         flag.String("port", "", "Server port (overrides PORT environment variable)"),
		"DISPLAY_UNIT": flag.String("unit", "", "Display unit id (overrides DISPLAY_UNIT environment variable)"),
	}
	flag.Parse()

	for key, value := range overrides {
		if *value == "" {
			continue
		}
		if err := os.Setenv(key, *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
