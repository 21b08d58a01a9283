// Package auth resolves a bearer credential to a stable owner id.
//
// Token verification happens upstream (the API gateway's authorizer);
// this package only extracts the subject claim and never inspects or
// validates signatures.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sicko7947/carlist"
)

// OwnerID extracts the owner id from an Authorization header value of
// the form "Bearer <jwt>". Returns carlist.ErrInvalidCredential if the
// header is malformed, the token doesn't parse, or it carries no
// subject.
func OwnerID(authorization string) (string, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return "", fmt.Errorf("%w: %v", carlist.ErrInvalidCredential, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", carlist.ErrInvalidCredential)
	}

	return claims.Subject, nil
}

// BearerToken strips the "Bearer " scheme from an Authorization header.
func BearerToken(authorization string) (string, error) {
	if authorization == "" {
		return "", fmt.Errorf("%w: missing authorization header", carlist.ErrInvalidCredential)
	}

	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", fmt.Errorf("%w: authorization header is not a bearer token", carlist.ErrInvalidCredential)
	}

	return token, nil
}
