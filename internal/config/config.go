package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	SMTP        SMTPConfig
	Twilio      TwilioConfig
	Sheets      SheetsConfig
	Keys        APIKeys
	Ai          AIConfig
	Ingestion   IngestionConfig
	VectorIndex VectorIndexConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	PhoneNumber    string
	WhatsAppNumber string
}

type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	SheetName       string
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
	Pinecone     string
}

type AIConfig struct {
	EmbeddingProvider string // "huggingface", "gemini" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string
	LLMProvider       string // "huggingface" or "ollama"
	LLMModel          string
}

type IngestionConfig struct {
	SourcePath   string
	ChunkSize    int
	ChunkOverlap int
}

type VectorIndexConfig struct {
	Backend   string // "pgvector" or "pinecone"
	IndexName string
	Dimension int
	Metric    string
	Cloud     string
	Region    string
	Host      string // Pinecone data-plane host, known after index creation
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/askmedix.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "AskMediX"),
		},
		Twilio: TwilioConfig{
			AccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
			PhoneNumber:    getEnv("TWILIO_PHONE_NUMBER", ""),
			WhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", "askmedix-credentials.json"),
			SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
			SheetName:       getEnv("SHEETS_SHEET_NAME", "Sheet1"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACEHUB_API_TOKEN", ""),
			Pinecone:     getEnv("PINECONE_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "huggingface"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:       getEnv("LLM_PROVIDER", "huggingface"),
			LLMModel:          getEnv("LLM_MODEL", "google/flan-t5-base"),
		},
		Ingestion: IngestionConfig{
			SourcePath:   getEnv("CORPUS_PATH", "data/Medical_book.pdf"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 500),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 50),
		},
		VectorIndex: VectorIndexConfig{
			Backend:   getEnv("VECTOR_STORE", "pgvector"),
			IndexName: getEnv("VECTOR_INDEX_NAME", "askmedix"),
			Dimension: getEnvAsInt("VECTOR_DIMENSION", 384),
			Metric:    getEnv("VECTOR_METRIC", "cosine"),
			Cloud:     getEnv("PINECONE_CLOUD", "aws"),
			Region:    getEnv("PINECONE_ENVIRONMENT", "us-east-1"),
			Host:      getEnv("PINECONE_INDEX_HOST", ""),
		},
	}
}

// AppointmentStore returns the configured appointment backend ("postgres" or "sheets").
func AppointmentStore() string {
	return getEnv("APPOINTMENT_STORE", "postgres")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
