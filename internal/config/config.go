package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	GoEnv string `envconfig:"GO_ENV" default:"dev"` // dev/prod

	// DB（DATABASE_URLがあれば個別値より優先）
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"app"`
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

	// カートスナップショット用Redis
	RedisURL     string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	CartTTL      time.Duration `envconfig:"CART_TTL" default:"720h"`
	RedisTimeout time.Duration `envconfig:"REDIS_TIMEOUT" default:"3s"`

	// 管理者ログイン（ユーザーテーブルは持たない）
	JWTSecret         string `envconfig:"JWT_SECRET" required:"true"`
	AdminEmail        string `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"` // bcrypt

	// CORSで許可するフロントURL
	FEURL string `envconfig:"FE_URL" default:"http://localhost:3000"`
}

// Loadは環境変数から設定を読む。
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
