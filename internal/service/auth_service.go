package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService autentica o usuário admin configurado por env e emite o JWT
// usado nas rotas de manutenção.
type AuthService struct {
	jwtSecret string
	adminUser string
	adminHash string
}

func NewAuthService(jwtSecret, adminUser, adminHash string) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		adminUser: adminUser,
		adminHash: adminHash,
	}
}

// Login valida credenciais contra o hash bcrypt configurado e devolve um
// token com role=admin válido por 24h.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.adminUser {
		return "", fmt.Errorf("credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", fmt.Errorf("credenciais inválidas")
	}

	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
