// © 2025 Vlad-Stefan Harbuz <vlad@vlad.website>
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions are issued elsewhere; all we do is check the bearer token they
// hand out.
type actorClaims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

var errNoSession = errors.New("no session")

func parseActor(tokenString string, secret string) (Actor, error) {
	if secret == "" {
		return Actor{}, errors.New("jwt secret is not configured")
	}
	claims := &actorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Actor{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return Actor{}, errors.New("invalid token")
	}
	role := claims.Role
	if role == "" {
		role = RoleUser
	}
	return Actor{Id: claims.Subject, Email: claims.Email, Role: role}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// optionalActor returns the signed-in actor, or errNoSession for anonymous
// requests. An invalid token is reported as an error, not as anonymous.
func (s *server) optionalActor(r *http.Request) (*Actor, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, errNoSession
	}
	actor, err := parseActor(token, s.cfg.JwtSecret)
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *server) withActor(next func(w http.ResponseWriter, r *http.Request, actor Actor)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := s.optionalActor(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "You need to sign in to do that."})
			return
		}
		next(w, r, *actor)
	}
}
