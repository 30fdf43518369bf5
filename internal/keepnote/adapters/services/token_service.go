package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/services"
	svc "keepnote/internal/keepnote/ports/services"
	"keepnote/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateSessionToken = "GenerateSessionToken"
	methodValidateSessionToken = "ValidateSessionToken"

	msgTokenGenerated = "session token generated"
	msgTokenExpired   = "session token has expired"
	msgTokenInvalid   = "session token is invalid"

	//nolint:gosec
	errSigningToken       = "error signing session token"
	errCtxGeneratingToken = "generating session token"
	errCtxValidatingToken = "validating session token"

	issuer = "keepnote"
)

// ErrInvalidAlgorithm возвращается для токенов, подписанных не HMAC.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims - представление токена сессии для библиотеки JWT.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// ServiceJWT подписывает токены сессии HS256.
type ServiceJWT struct {
	secret []byte
	now    func() time.Time
}

// NewJWT создает сервис токенов сессии.
func NewJWT(secret string) svc.TokenService {
	return &ServiceJWT{secret: []byte(secret), now: time.Now}
}

func (s *ServiceJWT) GenerateSessionToken(ctx context.Context, sessionID, userID string, expiresAt time.Time) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGenerateSessionToken), zap.String("user_id", userID))

	if len(s.secret) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingSessionToken)
	}

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingSessionToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expires_at", expiresAt))
	return token, nil
}

func (s *ServiceJWT) ValidateSessionToken(ctx context.Context, tokenString string) (*svc.SessionClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateSessionToken))

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredSessionToken)
		}
		log.Debug(ctx, msgTokenInvalid, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrInvalidSessionToken, err)
	}

	if claims.SessionID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w: missing claims", errCtxValidatingToken, services.ErrInvalidSessionToken)
	}

	return &svc.SessionClaims{
		SessionID: claims.SessionID,
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
