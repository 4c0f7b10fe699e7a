package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	AdsSync  AdsSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
}

// AdsSync concentra os parâmetros da sincronização incremental de métricas de anúncios
type AdsSync struct {
	TableName             string  `mapstructure:"ads_sync_table"`
	LookbackDays          int     `mapstructure:"ads_sync_lookback_days"`
	RewriteLastNDays      int     `mapstructure:"ads_sync_rewrite_last_n_days"`
	MonitoringWindowDays  int     `mapstructure:"ads_sync_monitoring_window_days"`
	MaxChunkDays          int     `mapstructure:"ads_sync_max_chunk_days"`
	RateLimitDelaySeconds int     `mapstructure:"ads_sync_rate_limit_delay_seconds"`
	MinSpendThreshold     float64 `mapstructure:"ads_sync_min_spend_threshold"`
	CronSchedule          string  `mapstructure:"ads_sync_cron"`
	Enabled               bool    `mapstructure:"ads_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_warehouse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v17.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_AD_ACCOUNT_ID", "your_ad_account_id")

	// Defaults para a sincronização incremental
	viper.SetDefault("ADS_SYNC_TABLE", "facebook_ads_daily")
	viper.SetDefault("ADS_SYNC_LOOKBACK_DAYS", 30)            // Janela padrão do comando daily
	viper.SetDefault("ADS_SYNC_REWRITE_LAST_N_DAYS", 1)       // Reescrever o último dia para capturar dados finalizados
	viper.SetDefault("ADS_SYNC_MONITORING_WINDOW_DAYS", 10)   // Inspecionar apenas as últimas N datas no banco
	viper.SetDefault("ADS_SYNC_MAX_CHUNK_DAYS", 7)            // Máximo de dias por requisição à API do Meta
	viper.SetDefault("ADS_SYNC_RATE_LIMIT_DELAY_SECONDS", 30) // Pausa entre requisições
	viper.SetDefault("ADS_SYNC_MIN_SPEND_THRESHOLD", 0.01)    // Gasto mínimo para manter a linha no resultado
	viper.SetDefault("ADS_SYNC_CRON", "0 3 * * *")            // Todos os dias às 3h da manhã
	viper.SetDefault("ADS_SYNC_ENABLED", false)               // Habilitar o agendador no modo serve

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
