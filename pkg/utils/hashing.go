package utils

import (
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// PINs are short numeric secrets; they get the same bcrypt treatment as
// passwords so a database dump never exposes them.
func HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), 10)
	return string(bytes), err
}

func ComparePin(hashedPin string, plainPin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPin), []byte(plainPin)) == nil
}
