package model

import "errors"

// Ошибки валидации полей. Возвращаются конструкторами полей
// и проверяются через errors.Is.
var (
	ErrInvalidName     = errors.New("name cannot be empty")
	ErrInvalidPhone    = errors.New("phone number must be exactly 10 digits")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidBirthday = errors.New("invalid birthday")
	ErrInvalidAddress  = errors.New("address cannot be empty")
)

// Ошибки операций над Record.
var (
	ErrDuplicatePhone = errors.New("phone number already exists")
	ErrPhoneNotFound  = errors.New("phone number not found")
	ErrEmailNotSet    = errors.New("email is not set")
	ErrBirthdayNotSet = errors.New("birthday is not set")
	ErrAddressNotSet  = errors.New("address is not set")
)

// ErrEmptyText возвращается при попытке создать заметку без текста.
var ErrEmptyText = errors.New("note text cannot be empty")
