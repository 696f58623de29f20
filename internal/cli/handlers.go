package cli

import (
	"fmt"
	"strconv"
	"strings"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	"assistant-bot/internal/service"
)

// Confirmer запрашивает у пользователя подтверждение действия.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc адаптер функции к интерфейсу Confirmer.
type ConfirmerFunc func(prompt string) bool

// Confirm вызывает f(prompt).
func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Handlers обработчики команд интерактивного цикла. Каждая команда
// возвращает готовый к печати текст; признак mutated сообщает циклу,
// что книги изменились и снимок нужно сохранить.
type Handlers struct {
	contacts     service.ContactService
	notes        service.NoteService
	stats        service.StatsService
	confirm      Confirmer
	birthdayDays int
}

// NewHandlers создает обработчики поверх сервисов.
func NewHandlers(
	contacts service.ContactService,
	notes service.NoteService,
	stats service.StatsService,
	confirm Confirmer,
	birthdayDays int,
) *Handlers {
	return &Handlers{
		contacts:     contacts,
		notes:        notes,
		stats:        stats,
		confirm:      confirm,
		birthdayDays: birthdayDays,
	}
}

// Execute выполняет команду и возвращает текст для печати.
func (h *Handlers) Execute(cmd Command, args []string) (out string, mutated bool, err error) {
	switch cmd {
	case CmdHello:
		return "How can I help you?", false, nil
	case CmdHelp, CmdHelpAlt:
		return renderHelp(), false, nil
	case CmdExit, CmdClose:
		return "Good bye!", false, nil
	case CmdStats:
		return renderSummary(h.stats.Summary()), false, nil

	case CmdAddContact:
		return h.addContact(args)
	case CmdChangePhone:
		return h.changePhone(args)
	case CmdRemovePhone:
		return h.removePhone(args)
	case CmdShowContact:
		return h.showContact(args)
	case CmdAllContacts:
		return h.allContacts()
	case CmdSearch:
		return h.searchContacts(args)
	case CmdDeleteContact:
		return h.deleteContact(args)
	case CmdAddBirthday:
		return h.addBirthday(args)
	case CmdShowBirthday:
		return h.showBirthday(args)
	case CmdBirthdays:
		return h.upcomingBirthdays(args)
	case CmdAddEmail:
		return h.addEmail(args)
	case CmdShowEmail:
		return h.showEmail(args)
	case CmdDeleteEmail:
		return h.deleteEmail(args)
	case CmdAddAddress:
		return h.addAddress(args)
	case CmdDeleteAddress:
		return h.deleteAddress(args)

	case CmdAddNote:
		return h.addNote(args)
	case CmdEditNote:
		return h.editNote(args)
	case CmdDeleteNote:
		return h.deleteNote(args)
	case CmdListNotes:
		return h.listNotes(args)
	case CmdSearchNotes:
		return h.searchNotes(args)
	case CmdSearchTags:
		return h.searchTags(args)
	case CmdAddTags:
		return h.addTags(args)
	case CmdRemoveTags:
		return h.removeTags(args)
	}

	suggestion := Suggest(cmd)
	if suggestion != "" {
		return "", false, fmt.Errorf("unknown command %q, did you mean %q?", cmd, suggestion)
	}
	return "", false, fmt.Errorf("unknown command %q, type 'help' for the command list", cmd)
}

// usageError ошибка с подсказкой формата команды из каталога.
func usageError(cmd Command) error {
	for _, info := range commandCatalog {
		if info.Name == cmd {
			return fmt.Errorf("usage: %s", info.Usage)
		}
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (h *Handlers) addContact(args []string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, usageError(CmdAddContact)
	}
	created, err := h.contacts.Add(args[0], args[1])
	if err != nil {
		return "", false, err
	}
	if created {
		return "Contact added.", true, nil
	}
	return "Phone added to existing contact.", true, nil
}

func (h *Handlers) changePhone(args []string) (string, bool, error) {
	if len(args) != 3 {
		return "", false, usageError(CmdChangePhone)
	}
	if err := h.contacts.UpdatePhone(args[0], args[1], args[2]); err != nil {
		return "", false, err
	}
	return "Phone updated.", true, nil
}

func (h *Handlers) removePhone(args []string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, usageError(CmdRemovePhone)
	}
	if err := h.contacts.RemovePhone(args[0], args[1]); err != nil {
		return "", false, err
	}
	return "Phone removed.", true, nil
}

func (h *Handlers) showContact(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdShowContact)
	}
	record, err := h.contacts.Get(args[0])
	if err != nil {
		return "", false, err
	}
	return renderContacts([]*model.Record{record}), false, nil
}

func (h *Handlers) allContacts() (string, bool, error) {
	records := h.contacts.List()
	if len(records) == 0 {
		return "No contacts yet.", false, nil
	}
	return renderContacts(records), false, nil
}

func (h *Handlers) searchContacts(args []string) (string, bool, error) {
	if len(args) == 0 {
		return "", false, usageError(CmdSearch)
	}
	query := strings.Join(args, " ")
	records := h.contacts.Search(query)
	if len(records) == 0 {
		return fmt.Sprintf("No contacts found matching %q.", query), false, nil
	}
	return renderContacts(records), false, nil
}

func (h *Handlers) deleteContact(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdDeleteContact)
	}
	name := args[0]
	if !h.confirm.Confirm(fmt.Sprintf("Delete contact %q?", name)) {
		return "Cancelled.", false, nil
	}
	if err := h.contacts.Delete(name); err != nil {
		return "", false, err
	}
	return "Contact deleted.", true, nil
}

func (h *Handlers) addBirthday(args []string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, usageError(CmdAddBirthday)
	}
	if err := h.contacts.SetBirthday(args[0], args[1]); err != nil {
		return "", false, err
	}
	return "Birthday added.", true, nil
}

func (h *Handlers) showBirthday(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdShowBirthday)
	}
	birthday, err := h.contacts.Birthday(args[0])
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("%s's birthday is %s.", args[0], birthday), false, nil
}

func (h *Handlers) upcomingBirthdays(args []string) (string, bool, error) {
	days := h.birthdayDays
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return "", false, fmt.Errorf("days must be a non-negative number")
		}
		days = parsed
	}
	entries := h.contacts.UpcomingBirthdays(days)
	if len(entries) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days.", days), false, nil
	}
	return renderBirthdays(entries), false, nil
}

func (h *Handlers) addEmail(args []string) (string, bool, error) {
	if len(args) != 2 {
		return "", false, usageError(CmdAddEmail)
	}
	if err := h.contacts.SetEmail(args[0], args[1]); err != nil {
		return "", false, err
	}
	return "Email added.", true, nil
}

func (h *Handlers) showEmail(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdShowEmail)
	}
	email, err := h.contacts.Email(args[0])
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("%s's email is %s.", args[0], email), false, nil
}

func (h *Handlers) deleteEmail(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdDeleteEmail)
	}
	if err := h.contacts.RemoveEmail(args[0]); err != nil {
		return "", false, err
	}
	return "Email removed.", true, nil
}

func (h *Handlers) addAddress(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, usageError(CmdAddAddress)
	}
	if err := h.contacts.SetAddress(args[0], strings.Join(args[1:], " ")); err != nil {
		return "", false, err
	}
	return "Address added.", true, nil
}

func (h *Handlers) deleteAddress(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdDeleteAddress)
	}
	if err := h.contacts.RemoveAddress(args[0]); err != nil {
		return "", false, err
	}
	return "Address removed.", true, nil
}

func (h *Handlers) addNote(args []string) (string, bool, error) {
	text, tags := SplitTextAndTags(args)
	if text == "" {
		return "", false, usageError(CmdAddNote)
	}
	note, err := h.notes.Add(text, tags)
	if err != nil {
		return "", false, err
	}
	if len(note.Tags()) > 0 {
		return fmt.Sprintf("Note #%d added with tags: %s.", note.ID(), strings.Join(note.Tags(), ", ")), true, nil
	}
	return fmt.Sprintf("Note #%d added.", note.ID()), true, nil
}

func (h *Handlers) editNote(args []string) (string, bool, error) {
	if len(args) < 1 {
		return "", false, usageError(CmdEditNote)
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", false, err
	}

	text, tags := SplitTextAndTags(args[1:])
	var textArg *string
	if text != "" {
		textArg = &text
	}
	var tagsArg []string
	if len(tags) > 0 {
		tagsArg = tags
	}
	if err := h.notes.Edit(id, textArg, tagsArg); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Note #%d updated.", id), true, nil
}

func (h *Handlers) deleteNote(args []string) (string, bool, error) {
	if len(args) != 1 {
		return "", false, usageError(CmdDeleteNote)
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", false, err
	}
	if _, err := h.notes.Get(id); err != nil {
		return "", false, err
	}
	if !h.confirm.Confirm(fmt.Sprintf("Delete note #%d?", id)) {
		return "Cancelled.", false, nil
	}
	if err := h.notes.Delete(id); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Note #%d deleted.", id), true, nil
}

func (h *Handlers) listNotes(args []string) (string, bool, error) {
	key := book.SortByCreated
	direction := book.SortDesc
	if len(args) > 0 {
		key = book.SortKey(strings.ToLower(args[0]))
	}
	if len(args) > 1 {
		direction = book.SortDirection(strings.ToLower(args[1]))
	}

	notes, err := h.notes.List(key, direction)
	if err != nil {
		return "", false, err
	}
	if len(notes) == 0 {
		return "No notes yet.", false, nil
	}
	return renderNotes(notes), false, nil
}

func (h *Handlers) searchNotes(args []string) (string, bool, error) {
	if len(args) == 0 {
		return "", false, usageError(CmdSearchNotes)
	}
	query := strings.Join(args, " ")
	notes := h.notes.SearchText(query)
	if len(notes) == 0 {
		return fmt.Sprintf("No notes found matching %q.", query), false, nil
	}
	return renderNotes(notes), false, nil
}

func (h *Handlers) searchTags(args []string) (string, bool, error) {
	tags := ParseTags(args)
	if len(tags) == 0 {
		return "", false, usageError(CmdSearchTags)
	}
	notes := h.notes.SearchTags(tags)
	if len(notes) == 0 {
		return fmt.Sprintf("No notes found with tags: %s.", strings.Join(tags, ", ")), false, nil
	}
	return renderNotes(notes), false, nil
}

func (h *Handlers) addTags(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, usageError(CmdAddTags)
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", false, err
	}
	tags := ParseTags(args[1:])
	if len(tags) == 0 {
		return "", false, usageError(CmdAddTags)
	}
	if err := h.notes.AddTags(id, tags); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Tags added to note #%d.", id), true, nil
}

func (h *Handlers) removeTags(args []string) (string, bool, error) {
	if len(args) < 2 {
		return "", false, usageError(CmdRemoveTags)
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", false, err
	}
	tags := ParseTags(args[1:])
	if len(tags) == 0 {
		return "", false, usageError(CmdRemoveTags)
	}
	if err := h.notes.RemoveTags(id, tags); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Tags removed from note #%d.", id), true, nil
}

func parseNoteID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(raw, "#"))
	if err != nil {
		return 0, fmt.Errorf("note id must be a number, got %q", raw)
	}
	return id, nil
}
