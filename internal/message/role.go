package message

import (
	"fmt"
	"strings"

	apperrors "github.com/klemjul/researchforge/internal/errors"
)

type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	Typing    Role = "typing"
)

var Roles = []Role{User, Assistant, Typing}

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range Roles {
		if r == role {
			return r, nil
		}
	}
	return "", apperrors.NewValidationError("role", fmt.Sprintf("%q is not one of %v", s, Roles))
}
