// Package app собирает приложение: конфигурацию, логгер, хранилище,
// книги, сервисы и интерактивный командный цикл.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"assistant-bot/internal/book"
	"assistant-bot/internal/cli"
	"assistant-bot/internal/config"
	"assistant-bot/internal/converter"
	"assistant-bot/internal/service"
	"assistant-bot/internal/service/contacts"
	"assistant-bot/internal/service/notes"
	"assistant-bot/internal/service/stats"
	"assistant-bot/internal/storage"
)

// App приложение целиком: книги, сервисы, хранилище и ввод.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	AddressBook *book.AddressBook
	NoteBook    *book.NoteBook
	Store       *storage.FileStore
	Handlers    *cli.Handlers

	rl *readline.Instance
}

// New создает и инициализирует приложение: загружает снимок книг
// (отсутствие файла означает первый запуск с пустыми книгами),
// собирает сервисы и настраивает интерактивный ввод.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	store := storage.NewFileStore(cfg.Storage.Path, log)

	addressBook, noteBook, err := loadBooks(store, log)
	if err != nil {
		return nil, err
	}

	// Сборка компонентов (DI): книги → сервисы → обработчики
	clock := service.Clock(time.Now)
	contactSvc := contacts.NewContactService(addressBook, clock)
	noteSvc := notes.NewNoteService(noteBook, clock)
	statsSvc := stats.NewStatsService(addressBook, noteBook, clock, cfg.Stats.TopTags)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.Storage.Path + ".history",
		AutoComplete:    buildCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("readline.NewEx: %w", err)
	}

	app := &App{
		Config:      cfg,
		Log:         log,
		AddressBook: addressBook,
		NoteBook:    noteBook,
		Store:       store,
		rl:          rl,
	}
	app.Handlers = cli.NewHandlers(
		contactSvc,
		noteSvc,
		statsSvc,
		cli.ConfirmerFunc(app.confirm),
		cfg.Birthdays.DaysAhead,
	)
	return app, nil
}

// loadBooks восстанавливает книги из снимка на диске.
func loadBooks(store *storage.FileStore, log *zap.Logger) (*book.AddressBook, *book.NoteBook, error) {
	snapshot, err := store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("no snapshot found, starting with empty books",
				zap.String("path", store.Path()))
			return book.NewAddressBook(), book.NewNoteBook(), nil
		}
		return nil, nil, err
	}

	addressBook, noteBook, err := converter.FromSnapshot(snapshot)
	if err != nil {
		return nil, nil, err
	}
	log.Info("books loaded",
		zap.Int("contacts", addressBook.Len()),
		zap.Int("notes", noteBook.Len()))
	return addressBook, noteBook, nil
}

// Run выполняет командный цикл до команды выхода или конца ввода.
// Снимок сохраняется после каждой изменяющей команды и при выходе.
func (a *App) Run() error {
	defer a.rl.Close()

	fmt.Println("Welcome to the assistant bot!")
	fmt.Println("Type 'help' to see available commands.")

	for {
		line, err := a.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			a.save()
			fmt.Println("Good bye!")
			return nil
		}

		cmd, args := cli.ParseInput(line)
		if cmd == "" {
			continue
		}

		out, mutated, err := a.Handlers.Execute(cmd, args)
		if err != nil {
			fmt.Println(cli.ErrorPrint("Error: " + err.Error()))
			continue
		}
		if mutated {
			a.save()
		}
		switch {
		case out == "":
		case mutated:
			fmt.Println(cli.SuccessPrint(out))
		default:
			fmt.Println(out)
		}
		if cli.IsExit(cmd) {
			a.save()
			return nil
		}
	}
}

// save выгружает обе книги в снимок и пишет его на диск.
// Ошибка сохранения не прерывает сессию, но сообщается пользователю.
func (a *App) save() {
	snapshot := converter.ToSnapshot(a.AddressBook, a.NoteBook, time.Now())
	if err := a.Store.Save(snapshot); err != nil {
		a.Log.Error("snapshot save failed", zap.Error(err))
		fmt.Println(cli.ErrorPrint("Warning: could not save data: " + err.Error()))
	}
}

// confirm запрашивает подтверждение через тот же readline-ввод.
func (a *App) confirm(prompt string) bool {
	saved := a.rl.Config.Prompt
	a.rl.SetPrompt(prompt + " (y/[N]): ")
	defer a.rl.SetPrompt(saved)

	line, err := a.rl.Readline()
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// buildCompleter собирает автодополнение по каталогу команд.
func buildCompleter() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(cli.CommandNames()))
	for _, name := range cli.CommandNames() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
