package middleware

import (
	"context"
	"log"
	"net/http"

	"ayurchain/globals"

	"github.com/julienschmidt/httprouter"
)

func WithContext(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := context.WithValue(r.Context(), globals.ParamIDKey, ps)
		r = r.WithContext(ctx)
		h(w, r, ps)
	}
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("🔥 Panic recovered: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
