package genimage

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey means GEMINI_API_KEY was found in neither .env nor the
// environment.
var ErrMissingAPIKey = errors.New("❌ GEMINI_API_KEY not set")

// LoadAPIKey reads GEMINI_API_KEY, loading a .env file from the working
// directory first when one exists.
func LoadAPIKey() (string, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}
	return apiKey, nil
}
