package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SheetID       string
	SheetsAPIKey  string
	SheetsBaseURL string
	WorkbookPath  string
	CORSOrigins   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SheetID:       getEnv("SHEET_ID", ""),
		SheetsAPIKey:  getEnv("SHEETS_API_KEY", ""),
		SheetsBaseURL: getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com"),
		WorkbookPath:  getEnv("WORKBOOK_PATH", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
