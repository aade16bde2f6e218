package middleware

import (
	"context"
	"net/http"
	"strings"

	"ayurchain/globals"
	"ayurchain/models"
	"ayurchain/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, jwt.ErrTokenMalformed
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return globals.JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func withClaims(r *http.Request, claims *Claims) *http.Request {
	ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.Subject)
	ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
	return r.WithContext(ctx)
}

// Authenticate rejects requests without a valid bearer token and puts the
// principal's id and role on the request context.
func Authenticate(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := parseToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		h(w, withClaims(r, claims), ps)
	}
}

// OptionalAuth attaches the principal when a valid token is present but lets
// anonymous requests through.
func OptionalAuth(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := parseToken(r); err == nil {
			r = withClaims(r, claims)
		}
		h(w, r, ps)
	}
}

// RequireRole gates a route on the principal's role claim. The record-store
// handlers still re-check roles defensively; this is the first fence.
func RequireRole(role models.Role, h httprouter.Handle) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if utils.GetRoleFromContext(r.Context()) != role {
			utils.RespondWithError(w, http.StatusForbidden, "Insufficient role")
			return
		}
		h(w, r, ps)
	})
}
