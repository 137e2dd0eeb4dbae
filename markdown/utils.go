package markdown

import (
	"net/url"
	"regexp"
	"strings"
)

var bracketGroupReg = regexp.MustCompile(`\[[^\]]*\]`)

// softBreak заменяет переводы строк на жесткие переносы Markdown
// (два пробела перед переводом строки).
func softBreak(s string) string {
	return strings.ReplaceAll(s, "\n", "  \n")
}

// indentLines добавляет отступ в три пробела к каждой строке вложенного
// списка. Завершающий пустой остаток после последнего перевода строки не
// индентируется.
func indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" && i == len(lines)-1 {
			continue
		}
		lines[i] = "   " + line
	}
	return strings.Join(lines, "\n")
}

// stripBracketGroups удаляет группы в квадратных скобках из описания linkbar.
func stripBracketGroups(s string) string {
	return bracketGroupReg.ReplaceAllString(s, "")
}

// encodeURL нормализует URL через net/url. При ошибке разбора возвращает
// исходную строку без изменений.
func encodeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.String()
}
