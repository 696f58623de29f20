package cli

import (
	"strings"
)

// ParseInput разбирает строку ввода на команду и аргументы.
// Имя команды приводится к нижнему регистру, аргументы остаются как есть.
func ParseInput(line string) (Command, []string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", nil
	}
	return Command(strings.ToLower(fields[0])), fields[1:]
}

// Suggest подбирает ближайшую известную команду для опечатки:
// сначала по префиксу, затем по общему началу. Пустая строка
// означает, что подсказать нечего.
func Suggest(input Command) Command {
	if input == "" {
		return ""
	}
	lowered := strings.ToLower(string(input))

	best := Command("")
	bestLen := 0
	for _, info := range commandCatalog {
		name := string(info.Name)
		if strings.HasPrefix(name, lowered) {
			return info.Name
		}
		if l := commonPrefixLen(name, lowered); l > bestLen {
			best, bestLen = info.Name, l
		}
	}
	if bestLen < 3 {
		return ""
	}
	return best
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// ParseTags нормализует ввод тегов: запятые приравниваются к пробелам,
// ведущие '#' отбрасываются.
func ParseTags(args []string) []string {
	joined := strings.ReplaceAll(strings.Join(args, " "), ",", " ")

	var tags []string
	for _, field := range strings.Fields(joined) {
		tags = append(tags, strings.TrimPrefix(field, "#"))
	}
	return tags
}

// SplitTextAndTags делит аргументы на текст заметки и теги:
// слова, начинающиеся с '#', становятся тегами, остальные
// склеиваются в текст.
func SplitTextAndTags(args []string) (string, []string) {
	var words []string
	var tags []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "#") {
			tags = append(tags, strings.TrimPrefix(arg, "#"))
			continue
		}
		words = append(words, arg)
	}
	return strings.Join(words, " "), tags
}
