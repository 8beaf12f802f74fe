package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// identity is the actor extracted from the access token. The handler layer
// is the only place claims are read; services receive companyID and actorID
// as explicit arguments.
type identity struct {
	UserID    string
	CompanyID string
}

func identityFromRequest(r *http.Request) (identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return identity{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return identity{UserID: userID, CompanyID: companyID}, nil
}
