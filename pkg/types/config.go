package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Token signing
	// openssl rand -base64 32
	// to generate a value
	JWTSecret   string `envconfig:"JWT_SECRET"`
	TokenTTLMin uint   `envconfig:"TOKEN_TTL_MIN" default:"1440"` // 24 hours

	// The single account allowed to create matches and read stats
	AdminUserID int64 `envconfig:"ADMIN_USER_ID" default:"1"`

	// Origins the frontend is served from
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost,http://localhost:5173,http://127.0.0.1:5173"`
}
