package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	"assistant-bot/internal/storage"
)

// ToSnapshot конвертирует обе книги в снимок для сохранения.
// Контакты выгружаются в порядке добавления, заметки — по возрастанию
// идентификатора, вместе со значением счетчика идентификаторов.
func ToSnapshot(addressBook *book.AddressBook, noteBook *book.NoteBook, now time.Time) storage.Snapshot {
	return storage.Snapshot{
		Version:    storage.SnapshotVersion,
		SnapshotID: uuid.New().String(),
		SavedAt:    now,
		Contacts:   recordsToContacts(addressBook.Records()),
		Notes:      notesToSnapshot(noteBook.Notes()),
		NextNoteID: noteBook.NextID(),
	}
}

// FromSnapshot восстанавливает обе книги из снимка. Каждое поле
// проходит через те же конструкторы, что и при вводе; снимок,
// не проходящий валидацию, отклоняется с ErrDeserialize.
func FromSnapshot(snapshot storage.Snapshot) (*book.AddressBook, *book.NoteBook, error) {
	addressBook := book.NewAddressBook()
	for _, contact := range snapshot.Contacts {
		record, err := contactToRecord(contact, snapshot.SavedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: contact %q: %v", storage.ErrDeserialize, contact.Name, err)
		}
		if err := addressBook.AddRecord(record); err != nil {
			return nil, nil, fmt.Errorf("%w: contact %q: %v", storage.ErrDeserialize, contact.Name, err)
		}
	}

	noteBook := book.NewNoteBook()
	for _, note := range snapshot.Notes {
		restored, err := model.RestoreNote(note.ID, note.Text, note.Tags, note.CreatedAt, note.UpdatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: note %d: %v", storage.ErrDeserialize, note.ID, err)
		}
		if err := noteBook.Restore(restored); err != nil {
			return nil, nil, fmt.Errorf("%w: note %d: %v", storage.ErrDeserialize, note.ID, err)
		}
	}
	noteBook.RestoreNextID(snapshot.NextNoteID)

	return addressBook, noteBook, nil
}

// recordsToContacts конвертирует записи контактов в плоские DTO снимка.
func recordsToContacts(records []*model.Record) []storage.Contact {
	contacts := make([]storage.Contact, 0, len(records))
	for _, record := range records {
		contact := storage.Contact{
			Name: record.Name().String(),
		}
		for _, phone := range record.Phones() {
			contact.Phones = append(contact.Phones, phone.String())
		}
		if email, err := record.Email(); err == nil {
			value := email.String()
			contact.Email = &value
		}
		if birthday, err := record.Birthday(); err == nil {
			value := birthday.String()
			contact.Birthday = &value
		}
		if address, err := record.Address(); err == nil {
			value := address.String()
			contact.Address = &value
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

// contactToRecord восстанавливает запись контакта из DTO.
// Дата рождения проверяется относительно момента сохранения снимка,
// а не текущего момента: снимок валиден таким, каким был сохранен.
func contactToRecord(contact storage.Contact, savedAt time.Time) (*model.Record, error) {
	name, err := model.NewName(contact.Name)
	if err != nil {
		return nil, err
	}
	record := model.NewRecord(name)

	for _, raw := range contact.Phones {
		phone, err := model.NewPhone(raw)
		if err != nil {
			return nil, err
		}
		if err := record.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	if contact.Email != nil {
		email, err := model.NewEmail(*contact.Email)
		if err != nil {
			return nil, err
		}
		record.SetEmail(email)
	}
	if contact.Birthday != nil {
		birthday, err := model.NewBirthday(*contact.Birthday, savedAt)
		if err != nil {
			return nil, err
		}
		record.SetBirthday(birthday)
	}
	if contact.Address != nil {
		address, err := model.NewAddress(*contact.Address)
		if err != nil {
			return nil, err
		}
		record.SetAddress(address)
	}
	return record, nil
}

// notesToSnapshot конвертирует заметки в плоские DTO снимка.
func notesToSnapshot(notes []*model.Note) []storage.Note {
	result := make([]storage.Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, storage.Note{
			ID:        note.ID(),
			Text:      note.Text(),
			Tags:      note.Tags(),
			CreatedAt: note.CreatedAt(),
			UpdatedAt: note.UpdatedAt(),
		})
	}
	return result
}
