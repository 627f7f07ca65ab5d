package util

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// RandomInt returns a random int in [min, max] inclusive.
func RandomInt(min, max int) int {
	if min >= max {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return min + mathrand.Intn(max-min+1)
	}
	return min + int(n.Int64())
}

// NewID returns a sortable unique id used for schedule and attendance rows.
func NewID() string {
	return ulid.Make().String()
}

func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
