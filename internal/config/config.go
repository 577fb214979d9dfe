package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dataset     Dataset     `mapstructure:",squash"`
	Cleaning    Cleaning    `mapstructure:",squash"`
	ChartExport ChartExport `mapstructure:",squash"`
	Operator    Operator    `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Address retorna o endereço host:porta em que o dashboard escuta
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Dataset é a planilha limpa lida uma única vez na inicialização
type Dataset struct {
	Path  string `mapstructure:"dataset_path"`
	Sheet string `mapstructure:"dataset_sheet"`
}

// Cleaning aponta para a planilha bruta usada pelo comando de limpeza
type Cleaning struct {
	RawPath  string `mapstructure:"raw_dataset_path"`
	RawSheet string `mapstructure:"raw_dataset_sheet"`
}

type ChartExport struct {
	Dir          string `mapstructure:"export_dir"`
	CronSchedule string `mapstructure:"chart_export_cron"`
	Enabled      bool   `mapstructure:"chart_export_enabled"`
}

type Operator struct {
	User         string        `mapstructure:"operator_user"`
	PasswordHash string        `mapstructure:"operator_password_hash"`
	TokenTTL     time.Duration `mapstructure:"operator_token_ttl"`
}

// Valor de exemplo; só é aceito enquanto o login de operador estiver desabilitado
const defaultSecretKey = "your_secret_key"

func SetDefaults() {
	viper.SetDefault("HOST", "127.0.0.1")
	viper.SetDefault("PORT", "8050")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:8050,http://localhost:8050")

	viper.SetDefault("DATASET_PATH", "PROYECTO_BOYACA_EMPRESAS_LIMPIO.xlsx")
	viper.SetDefault("DATASET_SHEET", "") // vazio usa a primeira aba

	viper.SetDefault("RAW_DATASET_PATH", "PROYECTO BOYACÁ EMPRESAS.xlsx")
	viper.SetDefault("RAW_DATASET_SHEET", "Datos_Empresas_Boyaca_2022_ENRI")

	viper.SetDefault("EXPORT_DIR", "exports")
	viper.SetDefault("CHART_EXPORT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("CHART_EXPORT_ENABLED", false)

	viper.SetDefault("SECRET_KEY", defaultSecretKey)
	viper.SetDefault("OPERATOR_USER", "admin")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "") // vazio desabilita o login
	viper.SetDefault("OPERATOR_TOKEN_TTL", "24h")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Dataset.Path == "" {
		return nil, fmt.Errorf("DATASET_PATH não pode ser vazio")
	}

	if config.ChartExport.Enabled && config.ChartExport.CronSchedule == "" {
		return nil, fmt.Errorf("CHART_EXPORT_CRON é obrigatório quando CHART_EXPORT_ENABLED=true")
	}

	if config.Operator.PasswordHash != "" && (strings.TrimSpace(config.SecretKey) == "" || config.SecretKey == defaultSecretKey) {
		return nil, fmt.Errorf("SECRET_KEY deve ser definido quando OPERATOR_PASSWORD_HASH está configurado")
	}

	return config, nil
}

// loadEnvFile procura o arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
