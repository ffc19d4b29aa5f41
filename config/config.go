// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"time" // For parsing the token lifetime

	"github.com/joho/godotenv" // Loads a .env file in development
)

func init() {
	// A missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()
}

type Config struct { // Config struct holds all configuration values
	Port           string        // HTTP listen port
	DBPath         string        // Path to the SQLite database file
	JWTSecret      string        // Secret key for JWT authentication
	TokenTTL       time.Duration // How long an issued token stays valid
	ImageUploadURL string        // Endpoint of the external image host
	ImageAPIKey    string        // API key for the image host
	ImageFolder    string        // Destination folder on the image host
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:           getEnv("PORT", "4000"),                                       // Get port or use default
		DBPath:         getEnv("DB_PATH", "data.db"),                                 // Get DB path or use default
		JWTSecret:      getEnv("JWT_SECRET", "supersecret"),                          // Get JWT secret or use default
		TokenTTL:       getDuration("TOKEN_TTL", 2*time.Hour),                        // Token lifetime, default 2 hours
		ImageUploadURL: getEnv("IMAGE_UPLOAD_URL", "https://api.imgbb.com/1/upload"), // Image host endpoint
		ImageAPIKey:    getEnv("IMAGE_API_KEY", ""),                                  // Image host API key
		ImageFolder:    getEnv("IMAGE_FOLDER", "employees"),                          // Image host upload folder
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getDuration(key string, fallback time.Duration) time.Duration { // Helper for duration env vars
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
