package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	domain "filedrop-api/internal/domain/file"
)

// Alphabet excludes 0/O and 1/I so codes survive being read aloud or
// copied by hand. 32^8 candidate codes dwarf any realistic table size.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	CodeLength      = 8
	TokenByteLength = 12
)

// Issuer mints the public code and the secret delete token for a new file.
// Candidates are drawn from crypto/rand and pre-checked against live rows;
// the DB unique constraint stays the final arbiter for the check-then-insert
// race.
type Issuer struct {
	fileRepository domain.Repository
}

func NewIssuer(fileRepository domain.Repository) *Issuer {
	return &Issuer{fileRepository: fileRepository}
}

func (i *Issuer) IssueCode(ctx context.Context, length int) (string, error) {
	for {
		code, err := randomCode(length)
		if err != nil {
			return "", fmt.Errorf("draw code: %w", err)
		}

		exists, err := i.fileRepository.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		// collision: redraw the whole string, not the colliding position
	}
}

func (i *Issuer) IssueDeleteToken(ctx context.Context, byteLength int) (string, error) {
	for {
		buf := make([]byte, byteLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("draw token: %w", err)
		}
		token := strings.ToUpper(hex.EncodeToString(buf))

		exists, err := i.fileRepository.TokenExists(ctx, token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}
}

func (i *Issuer) IssuePair(ctx context.Context) (code, token string, err error) {
	code, err = i.IssueCode(ctx, CodeLength)
	if err != nil {
		return "", "", err
	}
	token, err = i.IssueDeleteToken(ctx, TokenByteLength)
	if err != nil {
		return "", "", err
	}

	return code, token, nil
}

func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	chars := make([]byte, length)
	for i, b := range buf {
		// uniform: the alphabet size (32) divides 256
		chars[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(chars), nil
}
