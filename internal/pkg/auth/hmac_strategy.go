package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements session token signing using HMAC signatures.
type HMACStrategy struct {
	secret []byte
}

// NewHMACStrategy builds HMACStrategy with provided secret.
func NewHMACStrategy(secret string) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret)}
}

// IssueToken generates a signed token carrying the session ID and deadline.
func (s *HMACStrategy) IssueToken(sessionID string, expiresAt time.Time) (string, error) {
	if sessionID == "" || strings.Contains(sessionID, ":") {
		return "", ErrInvalidToken
	}
	payload := fmt.Sprintf("%s:%d", sessionID, expiresAt.Unix())
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates signature and deadline and returns the session ID.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return "", ErrInvalidToken
	}

	return parts[0], nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
