package model

import "time"

// Record представляет один контакт адресной книги (доменная модель).
// Идентичность записи определяется именем, имя после создания не меняется.
// Телефоны хранятся в порядке добавления; email, дата рождения и адрес
// опциональны, каждого не больше одного.
type Record struct {
	name     Name
	phones   []Phone
	email    *Email
	birthday *Birthday
	address  *Address
}

// NewRecord создает новую запись контакта с указанным именем.
func NewRecord(name Name) *Record {
	return &Record{name: name}
}

// Name возвращает имя контакта.
func (r *Record) Name() Name {
	return r.name
}

// Phones возвращает копию списка телефонов в порядке добавления.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// AddPhone добавляет телефон в конец списка.
// Точный дубликат существующего номера не допускается.
func (r *Record) AddPhone(phone Phone) error {
	if r.findPhone(phone) >= 0 {
		return ErrDuplicatePhone
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone удаляет телефон из списка.
func (r *Record) RemovePhone(phone Phone) error {
	idx := r.findPhone(phone)
	if idx < 0 {
		return ErrPhoneNotFound
	}
	r.phones = append(r.phones[:idx], r.phones[idx+1:]...)
	return nil
}

// EditPhone заменяет старый номер новым, сохраняя его позицию в списке.
// Замена на номер, уже существующий у контакта, не допускается.
func (r *Record) EditPhone(oldPhone, newPhone Phone) error {
	idx := r.findPhone(oldPhone)
	if idx < 0 {
		return ErrPhoneNotFound
	}
	if dup := r.findPhone(newPhone); dup >= 0 && dup != idx {
		return ErrDuplicatePhone
	}
	r.phones[idx] = newPhone
	return nil
}

func (r *Record) findPhone(phone Phone) int {
	for i, p := range r.phones {
		if p.value == phone.value {
			return i
		}
	}
	return -1
}

// SetEmail устанавливает или заменяет email контакта.
func (r *Record) SetEmail(email Email) {
	r.email = &email
}

// Email возвращает email контакта, если он установлен.
func (r *Record) Email() (Email, error) {
	if r.email == nil {
		return Email{}, ErrEmailNotSet
	}
	return *r.email, nil
}

// RemoveEmail удаляет email контакта.
func (r *Record) RemoveEmail() error {
	if r.email == nil {
		return ErrEmailNotSet
	}
	r.email = nil
	return nil
}

// SetBirthday устанавливает или заменяет дату рождения контакта.
func (r *Record) SetBirthday(birthday Birthday) {
	r.birthday = &birthday
}

// Birthday возвращает дату рождения контакта, если она установлена.
func (r *Record) Birthday() (Birthday, error) {
	if r.birthday == nil {
		return Birthday{}, ErrBirthdayNotSet
	}
	return *r.birthday, nil
}

// SetAddress устанавливает или заменяет адрес контакта.
func (r *Record) SetAddress(address Address) {
	r.address = &address
}

// Address возвращает адрес контакта, если он установлен.
func (r *Record) Address() (Address, error) {
	if r.address == nil {
		return Address{}, ErrAddressNotSet
	}
	return *r.address, nil
}

// RemoveAddress удаляет адрес контакта.
func (r *Record) RemoveAddress() error {
	if r.address == nil {
		return ErrAddressNotSet
	}
	r.address = nil
	return nil
}

// NextBirthday возвращает дату ближайшего дня рождения начиная с ref
// (включительно). Если день/месяц в текущем году уже прошли, берется
// следующий год. День рождения 29 февраля в невисокосный год
// отмечается 28 февраля.
func (r *Record) NextBirthday(ref time.Time) (time.Time, error) {
	if r.birthday == nil {
		return time.Time{}, ErrBirthdayNotSet
	}

	refDate := DateOnly(ref)
	birth := r.birthday.value

	next := occurrenceInYear(birth, refDate.Year())
	if next.Before(refDate) {
		next = occurrenceInYear(birth, refDate.Year()+1)
	}
	return next, nil
}

// DaysToBirthday возвращает число дней от ref до ближайшего дня рождения.
// Ноль означает день рождения сегодня.
func (r *Record) DaysToBirthday(ref time.Time) (int, error) {
	next, err := r.NextBirthday(ref)
	if err != nil {
		return 0, err
	}
	return int(next.Sub(DateOnly(ref)).Hours() / 24), nil
}

// occurrenceInYear возвращает дату дня рождения в указанном году
// с учетом правила для 29 февраля.
func occurrenceInYear(birth time.Time, year int) time.Time {
	day := birth.Day()
	if birth.Month() == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, birth.Month(), day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
