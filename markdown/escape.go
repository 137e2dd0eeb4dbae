package markdown

import "strings"

// Обратный слеш заменяется первым, чтобы не экранировать уже добавленные слеши.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"@", `\@`,
	"!", `\!`,
	"[", `\[`,
	"]", `\]`,
	"%", `\%`,
)

// Escape экранирует значимые для Markdown символы в обычном тексте.
// Звездочки, подчеркивания и обратные кавычки не экранируются: форматирование
// передается структурно через marks, а не через текст.
func Escape(s string) string {
	return escaper.Replace(s)
}
