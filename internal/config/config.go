package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Port             int
	APIURL           string  // Remote detection endpoint
	RequestTimeout   int     // Detection request timeout in seconds
	ExampleDirectory string  // Directory with bundled example images
	PixelToNM        float64 // Pixel to nanometer conversion factor
	RiskThreshold    float64 // Carried for the detection backend's alert rule; no local consumer yet
	CameraDevice     int     // Capture device ID for camera input
	PreviewInterval  int     // Camera preview frame interval in milliseconds
	DatabasePath     string
	HistoryLimit     int // Default page size for scan history listings
	ThumbnailWidth   int // Width in pixels of stored history thumbnails
	LogDirectory     string
	StaticDirectory  string
}

func Load() *Config {
	return &Config{
		Port:             getEnvAsInt("PORT", 8080),
		APIURL:           getEnv("API_URL", "https://microplastic-detection-backend.onrender.com/detect"),
		RequestTimeout:   getEnvAsInt("REQUEST_TIMEOUT", 60),
		ExampleDirectory: getEnv("EXAMPLE_DIR", filepath.Join(".", "Example_images")),
		PixelToNM:        getEnvAsFloat("PIXEL_TO_NM", 100),
		RiskThreshold:    getEnvAsFloat("RISK_THRESHOLD", 15),
		CameraDevice:     getEnvAsInt("CAMERA_DEVICE", 0),
		PreviewInterval:  getEnvAsInt("PREVIEW_INTERVAL_MS", 200),
		DatabasePath:     getEnv("DB_PATH", filepath.Join(".", "microscan.db")),
		HistoryLimit:     getEnvAsInt("HISTORY_LIMIT", 50),
		ThumbnailWidth:   getEnvAsInt("THUMBNAIL_WIDTH", 160),
		LogDirectory:     getEnv("LOG_DIR", filepath.Join(".", "logs")),
		StaticDirectory:  getEnv("STATIC_DIR", filepath.Join(".", "static")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
