package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/suweldo-hq/payroll-engine-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "missing token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RequireCompany rejects tokens whose company_id claim is absent. Every
// payroll route is company-scoped; a token without one has nothing to see.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "invalid token")
			return
		}

		companyID, ok := claims["company_id"].(string)
		if !ok || companyID == "" {
			response.Unauthorized(w, "company_id claim is required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
