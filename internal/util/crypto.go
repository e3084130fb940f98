package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

const LocalMessageIDPrefix = "local_"

// Message id handed out when an email was not really delivered, e.g. "local_V1StGXR8_Z5jdHi6B".
func GenerateLocalMessageID() string {
	id, err := GenerateNChar(16)
	if err != nil {
		return LocalMessageIDPrefix + "unknown"
	}
	return LocalMessageIDPrefix + id
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
