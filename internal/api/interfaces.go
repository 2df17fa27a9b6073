package api

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// EventStreamI holds an upgraded connection open and streams uid's events.
type EventStreamI interface {
	Serve(w http.ResponseWriter, r *http.Request, uid uuid.UUID)
}
