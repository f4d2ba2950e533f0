package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Minio    MinioConfig
	Upload   UploadConfig
	Favorite FavoriteConfig
	Video    VideoConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	MaxSize            int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"524288000"` // 500MB
	CleanupTimeout     time.Duration `envconfig:"UPLOAD_CLEANUP_TIMEOUT" default:"10s"`
	ProvisionalTTL     time.Duration `envconfig:"UPLOAD_PROVISIONAL_TTL" default:"6h"`
	CleanupEvery       time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
	CleanupConcurrency int           `envconfig:"UPLOAD_CLEANUP_CONCURRENCY" default:"4"`
}

type FavoriteConfig struct {
	DebounceWindow time.Duration `envconfig:"FAVORITE_DEBOUNCE_WINDOW" default:"500ms"`
	DisplayLimit   int           `envconfig:"FAVORITE_DISPLAY_LIMIT" default:"4"`
	WriteTimeout   time.Duration `envconfig:"FAVORITE_WRITE_TIMEOUT" default:"10s"`
}

type VideoConfig struct {
	Timeout              time.Duration `envconfig:"VIDEO_RESOLVE_TIMEOUT" default:"5s"`
	YouTubeOEmbedURL     string        `envconfig:"VIDEO_YOUTUBE_OEMBED_URL" default:"https://www.youtube.com/oembed"`
	VimeoOEmbedURL       string        `envconfig:"VIDEO_VIMEO_OEMBED_URL" default:"https://vimeo.com/api/oembed.json"`
	DailymotionOEmbedURL string        `envconfig:"VIDEO_DAILYMOTION_OEMBED_URL" default:"https://www.dailymotion.com/services/oembed"`
}

type NATSConfig struct {
	URL           string        `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName    string        `envconfig:"NATS_STREAM_NAME" default:"BUCKET_EVENTS"`
	ConsumerName  string        `envconfig:"NATS_CONSUMER_NAME" default:"doclib-eventsync"`
	Subject       string        `envconfig:"NATS_SUBJECT" default:"bucket.documents"`
	AckWait       time.Duration `envconfig:"NATS_ACK_WAIT" default:"35s"`
	MaxDeliver    int           `envconfig:"NATS_MAX_DELIVER" default:"5"`
	HandleTimeout time.Duration `envconfig:"NATS_HANDLE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
