// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database/models"
	"github.com/rootlockdefense/defectrix/dtos"
	"github.com/rootlockdefense/defectrix/shared"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 12 * time.Hour

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike, so the response does not leak which of the two it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	userRepository shared.UserRepository
	secret         []byte
	now            func() time.Time
}

func NewAuthService(userRepository shared.UserRepository) *authService {
	return &authService{
		userRepository: userRepository,
		secret:         shared.JWTSecret(),
		now:            time.Now,
	}
}

// Login verifies the password against the stored bcrypt hash and issues a
// signed bearer token. Passwords are never compared in plaintext.
func (service *authService) Login(username, password string) (dtos.LoginResponse, error) {
	user, err := service.userRepository.FindByUsername(username)
	if err != nil {
		return dtos.LoginResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return dtos.LoginResponse{}, ErrInvalidCredentials
	}

	issuedAt := service.now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.Username,
		"role": string(user.Role),
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return dtos.LoginResponse{}, errors.Wrap(err, "could not sign token")
	}

	return dtos.LoginResponse{
		Token:    token,
		Username: user.Username,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}

// VerifyToken parses and validates a bearer token and resolves its user.
func (service *authService) VerifyToken(tokenString string) (models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return service.secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, errors.Wrap(err, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, errors.New("invalid token claims")
	}
	username, _ := claims["name"].(string)
	if username == "" {
		return models.User{}, errors.New("token carries no subject")
	}

	return service.userRepository.FindByUsername(username)
}

func (service *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "could not hash password")
	}
	return string(hash), nil
}
