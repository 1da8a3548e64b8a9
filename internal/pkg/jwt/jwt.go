package jwt

import (
	"errors"
	"time"

	"estate-booking/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are issued by the identity provider. Email and Name feed profile sync.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the validated caller extracted from a token.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
	Email  string
	Name   string
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// GenerateToken signs a token the way the identity provider does. Used by
// tests and local tooling.
func (s *Service) GenerateToken(id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: id.UserID,
		Role:   id.Role.String(),
		Email:  id.Email,
		Name:   id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Identify validates tokenString and resolves its role. A missing role claim
// means the caller has not been granted anything yet and is treated as guest.
func (s *Service) Identify(tokenString string) (Identity, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}
	if claims.UserID == uuid.Nil {
		return Identity{}, ErrInvalidToken
	}
	role := user.RoleGuest
	if claims.Role != "" {
		role, err = user.NewRole(claims.Role)
		if err != nil {
			return Identity{}, ErrInvalidToken
		}
	}
	return Identity{
		UserID: claims.UserID,
		Role:   role,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
