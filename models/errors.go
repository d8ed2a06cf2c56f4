package models

import "github.com/pkg/errors"

// Ошибки уровня домена, контроллер сопоставляет их с HTTP статусами:
// NotFoundError -> 404, BadRequestError -> 400, остальное -> 500.

type NotFoundError struct {
	msg string
}

func (e NotFoundError) Error() string {
	return e.msg
}

func NewNotFoundError(msg string) error {
	return NotFoundError{msg: msg}
}

type BadRequestError struct {
	msg string
}

func (e BadRequestError) Error() string {
	return e.msg
}

func NewBadRequestError(msg string) error {
	return BadRequestError{msg: msg}
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(NotFoundError)
	return ok
}

func IsBadRequest(err error) bool {
	_, ok := errors.Cause(err).(BadRequestError)
	return ok
}
