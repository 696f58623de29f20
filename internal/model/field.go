package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Форматы даты рождения: слой ввода/вывода работает с DD.MM.YYYY.
const (
	DateFormat        = "02.01.2006"
	DateFormatDisplay = "DD.MM.YYYY"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Name имя контакта. Служит ключом записи в адресной книге.
type Name struct {
	value string
}

// NewName создает имя контакта. Пустое имя недопустимо.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: trimmed}, nil
}

// String возвращает имя в исходном регистре.
func (n Name) String() string {
	return n.value
}

// Phone телефонный номер из ровно 10 цифр.
type Phone struct {
	value string
}

// NewPhone создает телефонный номер. Допустимы только строки
// из ровно 10 ASCII-цифр, без разделителей и пробелов.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%q: %w", raw, ErrInvalidPhone)
	}
	return Phone{value: raw}, nil
}

// String возвращает номер как строку цифр.
func (p Phone) String() string {
	return p.value
}

// Email адрес электронной почты. Хранится в нижнем регистре.
type Email struct {
	value string
}

// NewEmail создает адрес электронной почты. Требуется локальная часть,
// символ @ и домен хотя бы с одной точкой.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(trimmed) {
		return Email{}, fmt.Errorf("%q: %w", raw, ErrInvalidEmail)
	}
	return Email{value: trimmed}, nil
}

// String возвращает адрес в нижнем регистре.
func (e Email) String() string {
	return e.value
}

// Birthday дата рождения контакта.
type Birthday struct {
	value time.Time
}

// NewBirthday парсит дату рождения в формате DD.MM.YYYY.
// Несуществующие даты (29.02.2023) и даты позже today недопустимы;
// сравнение с today идет только по календарной дате.
func NewBirthday(raw string, today time.Time) (Birthday, error) {
	parsed, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: use %s format", ErrInvalidBirthday, DateFormatDisplay)
	}
	if parsed.After(DateOnly(today)) {
		return Birthday{}, fmt.Errorf("%w: date is in the future", ErrInvalidBirthday)
	}
	return Birthday{value: parsed}, nil
}

// Date возвращает дату рождения.
func (b Birthday) Date() time.Time {
	return b.value
}

// String возвращает дату в формате DD.MM.YYYY.
func (b Birthday) String() string {
	return b.value.Format(DateFormat)
}

// Address почтовый адрес контакта, свободный текст.
type Address struct {
	value string
}

// NewAddress создает адрес контакта. Пустой адрес недопустим.
func NewAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: trimmed}, nil
}

// String возвращает текст адреса.
func (a Address) String() string {
	return a.value
}

// DateOnly обрезает время до календарной даты в UTC.
// Вся арифметика дней рождения работает с такими датами.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
