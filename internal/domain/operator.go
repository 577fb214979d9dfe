package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os dados do operador carregados no token JWT
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
