package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role issued by the login endpoint
const RoleAdmin = "admin"

// SessionClaims are the claims embedded in an admin bearer token.
// The server keeps no session state; the token is the whole session.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the payload for POST /v1/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token back to the client
type LoginResponse struct {
	Token string `json:"token"`
}
