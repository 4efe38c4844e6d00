package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"filedrop-api/internal/domain/file"
	"filedrop-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
	maxUsernameLen = 64

	codeLen = 8
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ValidateCode expects the already-normalized (trimmed, uppercased) form.
func ValidateCode(code string) error {
	if len(code) != codeLen {
		return errors.New("invalid code")
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(codeAlphabet, rune(code[i])) {
			return errors.New("invalid code")
		}
	}

	return nil
}

func ParseFileID(s string) (file.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return file.ID(id), nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	username := strings.TrimSpace(r.Username)
	password := r.Password

	// username (required + length)
	if username == "" {
		errs["username"] = "username is required"
	} else if utf8.RuneCountInString(username) > maxUsernameLen {
		errs["username"] = "username length must be at most 64 characters"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
