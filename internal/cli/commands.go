// Package cli реализует интерактивный командный цикл: разбор ввода,
// таблицу команд, обработчики и вывод результатов. Вся печать и все
// сообщения пользователю живут здесь; доменные пакеты ничего не выводят.
package cli

// Command имя команды интерактивного цикла.
type Command string

// Команды работы с контактами.
const (
	CmdHello         Command = "hello"
	CmdAddContact    Command = "add"
	CmdChangePhone   Command = "change"
	CmdRemovePhone   Command = "remove-phone"
	CmdShowContact   Command = "phone"
	CmdAllContacts   Command = "all"
	CmdSearch        Command = "search"
	CmdDeleteContact Command = "delete"
	CmdAddBirthday   Command = "add-birthday"
	CmdShowBirthday  Command = "show-birthday"
	CmdBirthdays     Command = "birthdays"
	CmdAddEmail      Command = "add-email"
	CmdShowEmail     Command = "show-email"
	CmdDeleteEmail   Command = "delete-email"
	CmdAddAddress    Command = "add-address"
	CmdDeleteAddress Command = "delete-address"
)

// Команды работы с заметками.
const (
	CmdAddNote     Command = "add-note"
	CmdEditNote    Command = "edit-note"
	CmdDeleteNote  Command = "delete-note"
	CmdListNotes   Command = "list-notes"
	CmdSearchNotes Command = "search-notes"
	CmdSearchTags  Command = "search-tags"
	CmdAddTags     Command = "add-tags"
	CmdRemoveTags  Command = "remove-tags"
)

// Служебные команды.
const (
	CmdStats   Command = "stats"
	CmdHelp    Command = "help"
	CmdHelpAlt Command = "?"
	CmdExit    Command = "exit"
	CmdClose   Command = "close"
)

// commandInfo описание команды для справки и автодополнения.
type commandInfo struct {
	Name  Command
	Usage string
	Help  string
	Group string
}

// commandCatalog полный перечень команд в порядке вывода справки.
var commandCatalog = []commandInfo{
	{CmdHello, "hello", "greet the assistant", "General"},
	{CmdHelp, "help", "show this help", "General"},
	{CmdExit, "exit", "save and quit", "General"},
	{CmdClose, "close", "save and quit", "General"},
	{CmdStats, "stats", "show books summary", "General"},

	{CmdAddContact, "add <name> <phone>", "add a contact or a phone to an existing one", "Contacts"},
	{CmdChangePhone, "change <name> <old phone> <new phone>", "replace a contact's phone", "Contacts"},
	{CmdRemovePhone, "remove-phone <name> <phone>", "remove a contact's phone", "Contacts"},
	{CmdShowContact, "phone <name>", "show a contact", "Contacts"},
	{CmdAllContacts, "all", "show all contacts", "Contacts"},
	{CmdSearch, "search <query>", "search contacts by any field", "Contacts"},
	{CmdDeleteContact, "delete <name>", "delete a contact", "Contacts"},
	{CmdAddBirthday, "add-birthday <name> <DD.MM.YYYY>", "set a contact's birthday", "Contacts"},
	{CmdShowBirthday, "show-birthday <name>", "show a contact's birthday", "Contacts"},
	{CmdBirthdays, "birthdays [days]", "show upcoming birthdays", "Contacts"},
	{CmdAddEmail, "add-email <name> <email>", "set a contact's email", "Contacts"},
	{CmdShowEmail, "show-email <name>", "show a contact's email", "Contacts"},
	{CmdDeleteEmail, "delete-email <name>", "remove a contact's email", "Contacts"},
	{CmdAddAddress, "add-address <name> <address>", "set a contact's address", "Contacts"},
	{CmdDeleteAddress, "delete-address <name>", "remove a contact's address", "Contacts"},

	{CmdAddNote, "add-note <text> [#tag ...]", "add a note, words starting with # become tags", "Notes"},
	{CmdEditNote, "edit-note <id> [text] [#tag ...]", "replace a note's text and/or tags", "Notes"},
	{CmdDeleteNote, "delete-note <id>", "delete a note", "Notes"},
	{CmdListNotes, "list-notes [created|updated|text|tags] [asc|desc]", "list notes sorted", "Notes"},
	{CmdSearchNotes, "search-notes <query>", "search notes by text", "Notes"},
	{CmdSearchTags, "search-tags <tag ...>", "notes containing every given tag", "Notes"},
	{CmdAddTags, "add-tags <id> <tag ...>", "add tags to a note", "Notes"},
	{CmdRemoveTags, "remove-tags <id> <tag ...>", "remove tags from a note", "Notes"},
}

// CommandNames возвращает имена всех команд для автодополнения.
func CommandNames() []string {
	names := make([]string, 0, len(commandCatalog)+1)
	for _, info := range commandCatalog {
		names = append(names, string(info.Name))
	}
	names = append(names, string(CmdHelpAlt))
	return names
}

// IsExit сообщает, завершает ли команда сессию.
func IsExit(cmd Command) bool {
	return cmd == CmdExit || cmd == CmdClose
}
