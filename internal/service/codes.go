package service

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomBase36 draws n characters; bytes >= 252 are rejected so every
// character is equally likely.
func randomBase36(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			if b >= 252 {
				continue
			}
			out = append(out, base36Alphabet[b%36])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// NewInvitationCode joins two random base-36 substrings into a 16 character code.
func NewInvitationCode() (string, error) {
	a, err := randomBase36(8)
	if err != nil {
		return "", err
	}
	b, err := randomBase36(8)
	if err != nil {
		return "", err
	}
	return a + b, nil
}

// NewAdminSecret is a random uuid without dashes.
func NewAdminSecret() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate admin secret: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
