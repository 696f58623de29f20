package contacts

import (
	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	svc "assistant-bot/internal/service"
)

var _ svc.ContactService = (*service)(nil)

type service struct {
	addressBook *book.AddressBook
	clock       svc.Clock
}

// NewContactService создает новый экземпляр сервиса для работы с контактами.
func NewContactService(addressBook *book.AddressBook, clock svc.Clock) svc.ContactService {
	return &service{
		addressBook: addressBook,
		clock:       clock,
	}
}

// Add создает контакт с телефоном. Если контакт с таким именем уже
// существует, телефон добавляется к нему. Валидация обоих полей
// выполняется до какого-либо изменения книги.
func (s *service) Add(name, phone string) (bool, error) {
	contactName, err := model.NewName(name)
	if err != nil {
		return false, err
	}
	contactPhone, err := model.NewPhone(phone)
	if err != nil {
		return false, err
	}

	existing, err := s.addressBook.Find(contactName.String())
	if err == nil {
		return false, existing.AddPhone(contactPhone)
	}

	record := model.NewRecord(contactName)
	if err := record.AddPhone(contactPhone); err != nil {
		return false, err
	}
	if err := s.addressBook.AddRecord(record); err != nil {
		return false, err
	}
	return true, nil
}

// Get возвращает контакт по точному имени.
func (s *service) Get(name string) (*model.Record, error) {
	return s.addressBook.Find(name)
}

// List возвращает все контакты в порядке добавления.
func (s *service) List() []*model.Record {
	return s.addressBook.Records()
}

// Delete удаляет контакт по имени.
func (s *service) Delete(name string) error {
	return s.addressBook.Delete(name)
}

// Search ищет контакты по подстроке без учета регистра.
func (s *service) Search(query string) []*model.Record {
	return s.addressBook.Search(query)
}

// UpdatePhone заменяет телефон контакта, сохраняя позицию номера.
func (s *service) UpdatePhone(name, oldPhone, newPhone string) error {
	oldValue, err := model.NewPhone(oldPhone)
	if err != nil {
		return err
	}
	newValue, err := model.NewPhone(newPhone)
	if err != nil {
		return err
	}

	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}
	return record.EditPhone(oldValue, newValue)
}

// RemovePhone удаляет телефон контакта.
func (s *service) RemovePhone(name, phone string) error {
	value, err := model.NewPhone(phone)
	if err != nil {
		return err
	}

	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}
	return record.RemovePhone(value)
}

// SetBirthday устанавливает дату рождения контакта.
// Будущие даты отклоняются относительно текущей даты по часам сервиса.
func (s *service) SetBirthday(name, birthday string) error {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}

	value, err := model.NewBirthday(birthday, s.clock())
	if err != nil {
		return err
	}
	record.SetBirthday(value)
	return nil
}

// Birthday возвращает дату рождения контакта.
func (s *service) Birthday(name string) (model.Birthday, error) {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return model.Birthday{}, err
	}
	return record.Birthday()
}

// SetEmail устанавливает email контакта.
func (s *service) SetEmail(name, email string) error {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}

	value, err := model.NewEmail(email)
	if err != nil {
		return err
	}
	record.SetEmail(value)
	return nil
}

// Email возвращает email контакта.
func (s *service) Email(name string) (model.Email, error) {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return model.Email{}, err
	}
	return record.Email()
}

// RemoveEmail удаляет email контакта.
func (s *service) RemoveEmail(name string) error {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}
	return record.RemoveEmail()
}

// SetAddress устанавливает адрес контакта.
func (s *service) SetAddress(name, address string) error {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}

	value, err := model.NewAddress(address)
	if err != nil {
		return err
	}
	record.SetAddress(value)
	return nil
}

// RemoveAddress удаляет адрес контакта.
func (s *service) RemoveAddress(name string) error {
	record, err := s.addressBook.Find(name)
	if err != nil {
		return err
	}
	return record.RemoveAddress()
}

// UpcomingBirthdays возвращает дни рождения в ближайшие days дней
// от текущей даты по часам сервиса.
func (s *service) UpcomingBirthdays(days int) []book.BirthdayEntry {
	return s.addressBook.UpcomingBirthdays(days, s.clock())
}
