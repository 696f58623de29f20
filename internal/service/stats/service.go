package stats

import (
	"sort"

	"assistant-bot/internal/book"
	svc "assistant-bot/internal/service"
)

// Горизонт выборки дней рождения для сводки.
const summaryBirthdayDays = 10

var _ svc.StatsService = (*service)(nil)

type service struct {
	addressBook *book.AddressBook
	noteBook    *book.NoteBook
	clock       svc.Clock
	topTags     int
}

// NewStatsService создает новый экземпляр агрегатора статистики.
// topTags задает число тегов в сводке.
func NewStatsService(addressBook *book.AddressBook, noteBook *book.NoteBook, clock svc.Clock, topTags int) svc.StatsService {
	return &service{
		addressBook: addressBook,
		noteBook:    noteBook,
		clock:       clock,
		topTags:     topTags,
	}
}

// TopTags возвращает n самых употребляемых тегов. Теги считаются
// по всем заметкам; сортировка по убыванию количества, при равенстве
// раньше идет тег, встреченный первым при обходе заметок
// по возрастанию идентификатора.
func (s *service) TopTags(n int) []svc.TagCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, note := range s.noteBook.Notes() {
		for _, tag := range note.Tags() {
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	ranked := make([]svc.TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, svc.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Tag] < firstSeen[ranked[j].Tag]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Summary собирает сводку по обеим книгам на текущий момент
// по часам сервиса.
func (s *service) Summary() svc.Summary {
	return svc.Summary{
		ContactCount: s.addressBook.Len(),
		NoteCount:    s.noteBook.Len(),
		TopTags:      s.TopTags(s.topTags),
		Birthdays:    s.addressBook.UpcomingBirthdays(summaryBirthdayDays, s.clock()),
	}
}
