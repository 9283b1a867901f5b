package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"taxOffice/configs"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CompareHashAndPassword(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func GenerateSecretKey() string {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func CreateJwtToken(id uint, email, firstName, lastName string, role enums.Role, secretKey []byte, expiration time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		models.Claims{
			ID:        id,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Role:      role,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiration),
			},
		})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry together. Callers get a
// single error for any failure so rejection never leaks which part of
// verification failed.
func VerifyToken(tokenString string, secretKey []byte) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", errs.ErrInvalidToken)
	}

	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	return claims, nil
}

// GetJwtKey returns the shared signing secret. The session token and
// the short-lived socket token are signed with the same key on purpose.
func GetJwtKey() []byte {
	secret := configs.GetConfig().Viper.GetString("jwt.secret_key")
	if secret == "" {
		secret = "aycEW3OtV+axBFZQL4cplAVRFMhSEc+xRrcHXxhTM8U="
	}
	return []byte(secret)
}
