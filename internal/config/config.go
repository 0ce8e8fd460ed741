package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Upload   UploadConfig   `env-prefix:"UPLOAD_"`
}

type HTTPConfig struct {
	Addr           string        `env:"ADDR" env-default:":5000"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" env-default:"*"`
	ReadTimeout    time.Duration `env:"READ_TIMEOUT" env-default:"2m"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT" env-default:"2m"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type GRPCConfig struct {
	Addr        string        `env:"ADDR" env-default:":50051"`
	MaxConnIdle time.Duration `env:"MAX_CONN_IDLE" env-default:"5m"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"5"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"10"`
	TraceQueries  bool   `env:"TRACE_QUERIES" env-default:"false"`
}

type UploadConfig struct {
	MaxBytes    int64 `env:"MAX_BYTES" env-default:"33554432"`
	MaxFiles    int   `env:"MAX_FILES" env-default:"20"`
	Parallelism int   `env:"PARALLELISM" env-default:"4"`
}
