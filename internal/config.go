package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host      string `env:"HOST,default=0.0.0.0"`
	Port      int    `env:"PORT,required=true"`
	AdminPort int    `env:"ADMIN_PORT,required=true"`
	LogLevel  string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	MediaDir       string `env:"MEDIA_DIR,required=true"`
	MaxMediaBytes  int    `env:"MAX_MEDIA_BYTES,default=5242880"`
	LimitMessages  *int   `env:"LIMIT_MESSAGES"`
	SearchLimit    int    `env:"SEARCH_LIMIT,default=20"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	IndexBufferSize      int           `env:"INDEX_BUFFER_SIZE,default=256"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=168h"`
	SecureCookie      bool          `env:"SECURE_COOKIE,default=false"`

	WSRequireAuth     bool          `env:"WS_REQUIRE_AUTH,default=false"`
	WSAllowedOrigins  string        `env:"WS_ALLOWED_ORIGINS"`
	WSWriteTimeout    time.Duration `env:"WS_WRITE_TIMEOUT,default=10s"`
	WSPongTimeout     time.Duration `env:"WS_PONG_TIMEOUT,default=60s"`
	WSMaxMessageBytes int           `env:"WS_MAX_MESSAGE_BYTES,default=4096"`
}

// Validate checks what the env tags cannot express.
func (c Config) Validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	if c.Port == c.AdminPort {
		return fmt.Errorf("PORT and ADMIN_PORT must differ, both are %d", c.Port)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

// Origins returns the allowed websocket origins. Empty means same host only.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.WSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
