package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do serviço PartsHub.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Arquivo do ledger (PostgreSQL). Vazio desativa o arquivamento.
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis) para a preferência de tema e o rate limit.
	// Vazio usa o cache em memória.
	RedisAddr    string
	CacheTimeout time.Duration

	// Sessão (JWT com o papel escolhido)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Simulação
	ActiveRetailerID string
	OrderDelay       time.Duration
	SaleDelay        time.Duration
	DarkstoreDelay   time.Duration
	WarehouseDelay   time.Duration

	// Relatórios agendados (expressão cron de 5 campos)
	ReportSchedule string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Arquivo do ledger
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second,

		// 4. Sessão
		JWTSecretKey: mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. Simulação de latência
		ActiveRetailerID: getEnv("ACTIVE_RETAILER_ID", "r1"),
		OrderDelay:       getDurationEnv("ORDER_DELAY_MS", 1500) * time.Millisecond,
		SaleDelay:        getDurationEnv("SALE_DELAY_MS", 1500) * time.Millisecond,
		DarkstoreDelay:   getDurationEnv("DARKSTORE_DELAY_MS", 1500) * time.Millisecond,
		WarehouseDelay:   getDurationEnv("WAREHOUSE_DELAY_MS", 1000) * time.Millisecond,

		// 7. Relatórios
		ReportSchedule: getEnv("REPORT_SCHEDULE", "0 20 * * *"),
	}

	return cfg
}

// Funções Helpers

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável numérica e a devolve como time.Duration sem unidade;
// quem chama multiplica pela unidade.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um inteiro não negativo. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
