package globals

import (
	"os"
	"sync"
)

type ContextKey string

const (
	UserIDKey  ContextKey = "userId"
	RoleKey    ContextKey = "role"
	ParamIDKey ContextKey = "params"
)

var (
	jwtSecret []byte
	jwtOnce   sync.Once
)

// JwtSecret reads JWT_SECRET once, after main has had a chance to load .env.
func JwtSecret() []byte {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "ayurchain-dev-secret"
		}
		jwtSecret = []byte(secret)
	})
	return jwtSecret
}
