// 관리자 인증 비즈니스 로직
//
// 관리자 표면(/register, /teams)은 환경변수 자격 증명의 basic auth가 기본이고,
// /auth/login으로 발급받은 JWT access token도 Bearer로 사용 가능

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/alert-relay/backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMisconfigured = errors.New("auth config invalid")
)

type authClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService 구조체 정의
type AuthService struct {
	username  string
	password  string
	jwtSecret []byte
	accessTTL time.Duration
}

// AuthService 객체 생성
// JWT_ACCESS_TTL이 파싱 불가능하면 에러 반환
func NewAuthService(cfg config.AdminConfig) (*AuthService, error) {
	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	return &AuthService{
		username:  cfg.Username,
		password:  cfg.Password,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: accessTTL,
	}, nil
}

// TokenEnabled - JWT 발급/검증 가능 여부 (JWT_SECRET 설정 시에만)
func (s *AuthService) TokenEnabled() bool {
	return len(s.jwtSecret) > 0
}

// AccessTTL - access token 유효 기간
func (s *AuthService) AccessTTL() time.Duration {
	return s.accessTTL
}

// VerifyCredentials - 관리자 basic auth 자격 증명 검증 (상수 시간 비교)
func (s *AuthService) VerifyCredentials(username, password string) error {
	if s.password == "" {
		return fmt.Errorf("%w: ADMIN_PASSWORD is not set", ErrMisconfigured)
	}
	userOK := subtle.ConstantTimeCompare([]byte(s.username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
	if !userOK || !passOK {
		return ErrUnauthorized
	}
	return nil
}

// IssueAccessToken - 관리자 JWT access token 발급
func (s *AuthService) IssueAccessToken(username, password string) (string, error) {
	if !s.TokenEnabled() {
		return "", fmt.Errorf("%w: JWT_SECRET is not set", ErrMisconfigured)
	}
	if err := s.VerifyCredentials(username, password); err != nil {
		return "", err
	}

	now := time.Now()
	claims := authClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken - Bearer 토큰 검증 후 관리자 username 반환
func (s *AuthService) ParseAccessToken(tokenString string) (string, error) {
	if !s.TokenEnabled() {
		return "", ErrUnauthorized
	}

	var claims authClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	return claims.Username, nil
}
