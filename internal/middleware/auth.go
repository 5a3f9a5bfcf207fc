package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity — проверенная личность вызывающего из bearer-токена.
// Токены выпускает внешний auth-сервис; здесь только проверка подписи.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

type contextKey string

const identityContextKey contextKey = "identity"

type authClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// WithAuth проверяет заголовок Authorization: Bearer и кладёт Identity в
// контекст. Запросы без валидного токена проходят дальше анонимно —
// требование авторизации решают хендлеры.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, prefix) {
				if id, err := ParseToken(strings.TrimPrefix(header, prefix), secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), identityContextKey, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext возвращает личность вызывающего, если токен был валиден.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok && id.UserID != ""
}

// GetUserIDFromContext — краткая форма: только идентификатор пользователя.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return id.UserID, true
}

// ParseToken проверяет подпись HS256 и извлекает Identity из claims.
func ParseToken(tokenString, secret string) (Identity, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("token without subject")
	}
	return Identity{UserID: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

// NewToken подписывает токен для Identity. Используется тестами и утилитами;
// боевые токены приходят от внешнего auth-сервиса с тем же секретом.
func NewToken(secret string, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := authClaims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
