package apikey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("api key hashing failed")
	ErrComparisonFailed = errors.New("api key comparison failed")
	ErrMalformedKey     = errors.New("malformed api key")
)

const (
	DefaultCost = bcrypt.DefaultCost

	keyPrefix    = "hk"
	prefixBytes  = 4
	secretBytes  = 16
	keySeparator = "_"
)

// Key is a freshly issued device key. Plaintext is shown once and never stored.
type Key struct {
	Plaintext string
	Prefix    string
	Hash      string
}

// Generate issues a key of the form hk_<prefix>_<secret>. The prefix is stored
// in clear to locate the row; only the bcrypt hash of the full key is kept.
func Generate() (Key, error) {
	prefix, err := randomHex(prefixBytes)
	if err != nil {
		return Key{}, err
	}
	secret, err := randomHex(secretBytes)
	if err != nil {
		return Key{}, err
	}
	plaintext := strings.Join([]string{keyPrefix, prefix, secret}, keySeparator)

	hash, err := Hash(plaintext)
	if err != nil {
		return Key{}, err
	}
	return Key{Plaintext: plaintext, Prefix: prefix, Hash: hash}, nil
}

// Prefix extracts the lookup prefix from a presented key.
func Prefix(plaintext string) (string, error) {
	parts := strings.Split(plaintext, keySeparator)
	if len(parts) != 3 || parts[0] != keyPrefix || len(parts[1]) != prefixBytes*2 || parts[2] == "" {
		return "", ErrMalformedKey
	}
	return parts[1], nil
}

func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrMalformedKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, plaintext string) error {
	if hashed == "" || plaintext == "" {
		return ErrMalformedKey
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
