package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"assistant-bot/internal/book"
	"assistant-bot/internal/model"
	"assistant-bot/internal/service"
)

const timestampFormat = "02.01.2006 15:04"

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	errColor     = color.New(color.FgRed)
	accentColor  = color.New(color.FgCyan)
	SuccessPrint = okColor.SprintFunc()
	ErrorPrint   = errColor.SprintFunc()
)

// renderContacts строит таблицу контактов.
func renderContacts(records []*model.Record) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Name", "Phones", "Email", "Birthday", "Address"})

	for _, record := range records {
		phones := make([]string, 0, len(record.Phones()))
		for _, phone := range record.Phones() {
			phones = append(phones, phone.String())
		}

		email := "-"
		if e, err := record.Email(); err == nil {
			email = e.String()
		}
		birthday := "-"
		if b, err := record.Birthday(); err == nil {
			birthday = b.String()
		}
		address := "-"
		if a, err := record.Address(); err == nil {
			address = a.String()
		}

		table.Append([]string{
			record.Name().String(),
			strings.Join(phones, "; "),
			email,
			birthday,
			address,
		})
	}
	table.Render()
	return sb.String()
}

// renderNotes строит таблицу заметок.
func renderNotes(notes []*model.Note) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"ID", "Text", "Tags", "Created", "Updated"})

	for _, note := range notes {
		table.Append([]string{
			strconv.Itoa(note.ID()),
			note.Text(),
			strings.Join(note.Tags(), ", "),
			note.CreatedAt().Format(timestampFormat),
			note.UpdatedAt().Format(timestampFormat),
		})
	}
	table.Render()
	return sb.String()
}

// renderBirthdays строит таблицу ближайших дней рождения.
// Дата празднования уже учитывает перенос с выходных.
func renderBirthdays(entries []book.BirthdayEntry) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Name", "Birthday", "Celebration", "In Days"})

	for _, entry := range entries {
		birthday, _ := entry.Record.Birthday()
		table.Append([]string{
			entry.Record.Name().String(),
			birthday.String(),
			entry.Celebration.Format(model.DateFormat),
			strconv.Itoa(entry.DaysUntil),
		})
	}
	table.Render()
	return sb.String()
}

// renderSummary строит сводку для команды stats.
func renderSummary(summary service.Summary) string {
	var sb strings.Builder
	sb.WriteString(headerColor.Sprint("Books summary") + "\n")
	sb.WriteString(fmt.Sprintf("Contacts: %d\n", summary.ContactCount))
	sb.WriteString(fmt.Sprintf("Notes:    %d\n", summary.NoteCount))

	if len(summary.TopTags) > 0 {
		sb.WriteString("Top tags:\n")
		for _, tc := range summary.TopTags {
			sb.WriteString(fmt.Sprintf("  %s (%d)\n", accentColor.Sprint(tc.Tag), tc.Count))
		}
	}
	if len(summary.Birthdays) > 0 {
		sb.WriteString("Upcoming birthdays:\n")
		sb.WriteString(renderBirthdays(summary.Birthdays))
	}
	return sb.String()
}

// renderHelp строит справку, сгруппированную по разделам.
func renderHelp() string {
	var sb strings.Builder
	group := ""
	for _, info := range commandCatalog {
		if info.Group != group {
			group = info.Group
			sb.WriteString(headerColor.Sprintf("%s\n", group))
		}
		sb.WriteString(fmt.Sprintf("  %-50s %s\n", accentColor.Sprint(info.Usage), info.Help))
	}
	return sb.String()
}
