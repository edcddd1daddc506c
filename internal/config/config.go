package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Page names accepted by StartPage.
const (
	PageSketch    = "sketch"
	PageLandscape = "landscape"
)

type Config struct {
	// Window
	WindowWidth  int
	WindowHeight int
	Title        string
	TPS          int

	// Pages
	StartPage string

	// Audio
	Sound  bool
	Volume float64

	// Debug overlay
	Debug bool
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		WindowWidth:  getEnvInt("SKETCH_WINDOW_WIDTH", 960),
		WindowHeight: getEnvInt("SKETCH_WINDOW_HEIGHT", 720),
		Title:        getEnv("SKETCH_TITLE", "Sketchbook"),
		TPS:          getEnvInt("SKETCH_TPS", 60),

		StartPage: strings.ToLower(getEnv("SKETCH_START_PAGE", PageSketch)),

		Sound:  getEnvBool("SKETCH_SOUND", true),
		Volume: getEnvFloat("SKETCH_VOLUME", 0.4),

		Debug: getEnvBool("SKETCH_DEBUG", false),
	}
}

// Validate reports the first setting the app cannot start with.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	switch c.StartPage {
	case PageSketch, PageLandscape:
	default:
		return fmt.Errorf("unknown start page %q", c.StartPage)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f outside [0, 1]", c.Volume)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
