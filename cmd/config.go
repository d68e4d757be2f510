package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	ResendAPIKey      string
	ResendFromAddress string
	InspectorEmail    string
	GeminiAPIKey      string
	GeminiModel       string
	ChecklistPath     string
}
