package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert or update violates a unique
// constraint (duplicate email/username, or a sibling position already taken).
var ErrDuplicateKey = errors.New("duplicate key")

// translateErr maps gorm's translated driver errors onto repository errors.
// Requires gorm.Config{TranslateError: true} on the session.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
