package config

import (
	"os"
	"strconv"
)

// Store backends selectable through MOVIE_STORE.
const (
	StoreCosmos   = "cosmos"
	StoreDynamoDB = "dynamodb"
)

// CosmosConfig holds Azure Cosmos DB (NoSQL API) settings.
type CosmosConfig struct {
	ConnectionString string
	Database         string
	Container        string
}

// DynamoConfig holds settings for the DynamoDB movie table.
type DynamoConfig struct {
	Table    string
	Region   string
	Endpoint string
}

// OpenAIConfig holds settings for the text completion provider.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env         string
	LogLevel    string
	Port        string
	RoutePrefix string
	// NotFoundStrict makes every not-found movie route answer 404.
	NotFoundStrict bool
	Store          string
	Cosmos         CosmosConfig
	Dynamo         DynamoConfig
	OpenAI         OpenAIConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// The Cosmos and OpenAI keys keep the names used by the Azure Functions deployment.
func Load() *AppConfig {
	return &AppConfig{
		Env:      getEnv("APP_ENV", "prod"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		// Azure Functions custom handlers receive their port in FUNCTIONS_CUSTOMHANDLER_PORT.
		Port:           getEnv("FUNCTIONS_CUSTOMHANDLER_PORT", getEnv("PORT", "8080")),
		RoutePrefix:    getEnv("ROUTE_PREFIX", ""),
		NotFoundStrict: getEnvBool("NOT_FOUND_STRICT", false),
		Store:          getEnv("MOVIE_STORE", StoreCosmos),
		Cosmos: CosmosConfig{
			ConnectionString: getEnv("CosmosDbConnectionSetting", ""),
			Database:         getEnv("DBNAME", ""),
			Container:        getEnv("CONTNAME", ""),
		},
		Dynamo: DynamoConfig{
			Table:    getEnv("DYNAMODB_TABLE", ""),
			Region:   getEnv("AWS_REGION", ""),
			Endpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("openaiapikey", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			Temperature: getEnvFloat32("OPENAI_TEMPERATURE", 1),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 200),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat32(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err == nil {
			return float32(f)
		}
	}
	return def
}
