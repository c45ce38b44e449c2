package configs

import "time"

// Auth configures operator access to the admin API. Admin routes are open
// when AdminPasswordHash is empty, which is meant for local use only.
type Auth struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	AdminUser         string        `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

// Enabled reports whether admin routes require a token.
func (a Auth) Enabled() bool {
	return a.AdminPasswordHash != ""
}
