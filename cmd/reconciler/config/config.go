package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string        `env:"DATABASE_URL,notEmpty"`
	DatabaseQueryTimeout time.Duration `env:"DATABASE_QUERY_TIMEOUT" envDefault:"30s"`
	Timezone             string        `env:"TIMEZONE" envDefault:"Europe/Moscow"`
	ReportDir            string        `env:"REPORT_DIR" envDefault:"d"`
	LookupChunkSize      int           `env:"LOOKUP_CHUNK_SIZE" envDefault:"500"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`

	Elasticsearch Elasticsearch
	Audit         Audit
	FTP           FTP
}

// Elasticsearch holds log store configuration.
type Elasticsearch struct {
	URLs             []string      `env:"ELASTICSEARCH_URLS" envSeparator:"," envDefault:"http://localhost:9200"`
	Username         string        `env:"ELASTICSEARCH_USERNAME"`
	Password         string        `env:"ELASTICSEARCH_PASSWORD"`
	Timeout          time.Duration `env:"ELASTICSEARCH_TIMEOUT" envDefault:"90s"`
	APMIndex         string        `env:"ELASTICSEARCH_APM_INDEX" envDefault:"apm-*prod-ecom-0*"`
	ClientIndex      string        `env:"ELASTICSEARCH_CLIENT_INDEX" envDefault:"k8s-production-*"`
	MaxHits          int           `env:"ELASTICSEARCH_MAX_HITS" envDefault:"10000"`
	TruncationPolicy string        `env:"ELASTICSEARCH_TRUNCATION_POLICY" envDefault:"warn"`
}

// Audit holds templates of links back to log documents.
type Audit struct {
	APMLink    string `env:"AUDIT_APM_LINK" envDefault:"https://kibana.puls.ru/app/discover#/doc/apm/{index}?id={id}"`
	ClientLink string `env:"AUDIT_CLIENT_LINK" envDefault:"https://kibana.puls.ru/app/discover#/doc/k8s/{index}?id={id}"`
}

// FTP holds feed server configuration.
type FTP struct {
	Host           string        `env:"FTP_HOST" envDefault:"ftp.puls.ru:21"`
	Timeout        time.Duration `env:"FTP_TIMEOUT" envDefault:"30s"`
	SbermmUser     string        `env:"FTP_SBERMM_USER"`
	SbermmPassword string        `env:"FTP_SBERMM_PASSWORD"`
	YandexUser     string        `env:"FTP_YANDEX_USER"`
	YandexPassword string        `env:"FTP_YANDEX_PASSWORD"`
}

// Load reads the optional .env file and parses environment variables.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("can't load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't parse env variables: %w", err)
	}

	switch cfg.Elasticsearch.TruncationPolicy {
	case "warn", "fail":
	default:
		return Config{}, fmt.Errorf("unknown truncation policy %q", cfg.Elasticsearch.TruncationPolicy)
	}

	return cfg, nil
}
