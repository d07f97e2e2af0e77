package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"petclinic/internal/platform/logger"
)

// Recover corta el panic, lo loguea con el logger del request y responde 500.
// Reemplaza a chi/middleware.Recoverer para que el panic quede en nuestros logs.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered", logger.Fields{
				"panic": fmt.Sprintf("%v", rec),
				"stack": string(debug.Stack()),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
