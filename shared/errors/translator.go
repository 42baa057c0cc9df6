package errors

import (
	"errors"

	"github.com/openforum-dev/forumapi/shared/domain"
)

var directory = map[*domain.CodeError]*ErrorWithStatusCode{
	domain.ErrRegisterUserMissingProperty:    Invariant("tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"),
	domain.ErrRegisterUserDataType:           Invariant("tidak dapat membuat user baru karena tipe data tidak sesuai"),
	domain.ErrRegisterUserUsernameLimit:      Invariant("tidak dapat membuat user baru karena karakter username melebihi batas limit"),
	domain.ErrRegisterUserUsernameRestricted: Invariant("tidak dapat membuat user baru karena username mengandung karakter terlarang"),

	domain.ErrUserLoginMissingProperty: Invariant("harus mengirimkan username dan password"),
	domain.ErrUserLoginDataType:        Invariant("username dan password harus string"),
	domain.ErrRefreshAuthMissingToken:  Invariant("harus mengirimkan token refresh"),
	domain.ErrRefreshAuthDataType:      Invariant("refresh token harus string"),
	domain.ErrDeleteAuthMissingToken:   Invariant("harus mengirimkan token refresh"),
	domain.ErrDeleteAuthDataType:       Invariant("refresh token harus string"),
	domain.ErrAccessTokenMissing:       Authentication("Missing authentication"),
	domain.ErrAccessTokenScheme:        Authentication("access token harus menggunakan skema Bearer"),

	domain.ErrAddThreadMissingProperty:   Invariant("tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"),
	domain.ErrAddThreadDataType:          Invariant("tidak dapat membuat thread baru karena tipe data tidak sesuai"),
	domain.ErrAddCommentMissingProperty:  Invariant("tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada"),
	domain.ErrAddCommentDataType:         Invariant("tidak dapat membuat komentar baru karena tipe data tidak sesuai"),
	domain.ErrDeleteCommentNotAuthorized: Authorization("anda tidak berhak mengakses comment ini"),
	domain.ErrAddReplyMissingProperty:    Invariant("tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada"),
	domain.ErrAddReplyDataType:           Invariant("tidak dapat membuat balasan baru karena tipe data tidak sesuai"),
	domain.ErrDeleteReplyNotAuthorized:   Authorization("anda tidak berhak mengakses balasan ini"),
}

// Translate turns a known domain code into a client error.
// Anything else, including codes raised by broken invariants deeper down,
// is returned unchanged and ends up as a 500.
func Translate(err error) error {
	var codeErr *domain.CodeError
	if !errors.As(err, &codeErr) {
		return err
	}
	if translated, ok := directory[codeErr]; ok {
		return &ErrorWithStatusCode{Message: translated.Message, StatusCode: translated.StatusCode}
	}
	return err
}
