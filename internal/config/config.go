package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Minio     MinioConfig
	Upload    UploadConfig
	Session   SessionConfig
	Database  DatabaseConfig
	NATS      NATSConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"3001"`
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	StorageClass              string        `envconfig:"MINIO_STORAGE_CLASS" default:"STANDARD_IA"`
	UploadPresignedDuration   time.Duration `envconfig:"MINIO_UPLOAD_PRESIGNED_DURATION" default:"1h"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"1h"`
}

type UploadConfig struct {
	MaxBatchFiles   int           `envconfig:"UPLOAD_MAX_BATCH_FILES" default:"10"`
	MaxFileSize     int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"104857600"` // 100MB
	StoreOpTimeout  time.Duration `envconfig:"UPLOAD_STORE_OP_TIMEOUT" default:"30s"`
	MultipartMemory int64         `envconfig:"UPLOAD_MULTIPART_MEMORY" default:"33554432"` // 32MB
}

type SessionConfig struct {
	RedisAddr     string        `envconfig:"SESSION_REDIS_ADDR" required:"true"`
	RedisPassword string        `envconfig:"SESSION_REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"SESSION_REDIS_DB" default:"0"`
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"upload_session"`
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

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" default:""`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"AUDIT"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"audit.events"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"filevault-api"`
}

type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"50"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
}

type AuditConfig struct {
	BufferSize int `envconfig:"AUDIT_BUFFER_SIZE" default:"256"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
