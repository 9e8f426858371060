// tags работает со списком активностей дня в текстовом виде "Work, Exercise, Family".
// Все функции чистые: на вход и на выход строки, без побочных эффектов.
package tags

import "strings"

// Separator — разделитель в каноничной записи списка.
const Separator = ", "

// Parse разбивает строку по запятым, обрезает пробелы, отбрасывает пустые элементы
// и удаляет дубликаты без учёта регистра. Порядок и написание первого вхождения сохраняются.
func Parse(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Serialize собирает список в строку через ", ".
func Serialize(list []string) string {
	return strings.Join(list, Separator)
}

// Normalize приводит строку тегов к каноничному виду.
func Normalize(text string) string {
	return Serialize(Parse(text))
}

// Contains сообщает, есть ли tag в списке (без учёта регистра).
func Contains(tag, text string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}

	for _, t := range Parse(text) {
		if strings.EqualFold(t, tag) {
			return true
		}
	}

	return false
}

// Add добавляет tag в конец списка, если его там ещё нет.
func Add(tag, text string) string {
	list := Parse(text)
	tag = strings.TrimSpace(tag)

	if tag == "" || strings.Contains(tag, ",") {
		return Serialize(list)
	}

	for _, t := range list {
		if strings.EqualFold(t, tag) {
			return Serialize(list)
		}
	}

	return Serialize(append(list, tag))
}

// Remove удаляет все совпадения tag без учёта регистра.
func Remove(tag, text string) string {
	list := Parse(text)
	tag = strings.TrimSpace(tag)

	out := list[:0]
	for _, t := range list {
		if !strings.EqualFold(t, tag) {
			out = append(out, t)
		}
	}

	return Serialize(out)
}

// Toggle удаляет tag, если он есть, иначе добавляет.
func Toggle(tag, text string) string {
	if Contains(tag, text) {
		return Remove(tag, text)
	}

	return Add(tag, text)
}
