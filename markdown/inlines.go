package markdown

import (
	"log/slog"
	"strings"

	"github.com/aisa-it/slatemd/sltypes"
)

// renderLeaves рендерит фрагменты текстового узла.
func renderLeaves(text *sltypes.Text) string {
	var b strings.Builder
	for _, leaf := range text.Leaves {
		b.WriteString(renderLeaf(leaf))
	}
	return b.String()
}

// renderLeaf экранирует текст фрагмента и сворачивает его форматирования:
// каждый mark оборачивает результат предыдущего, поэтому первый в списке
// дает самый внутренний синтаксис.
func renderLeaf(leaf sltypes.Leaf) string {
	out := Escape(leaf.Text)
	for _, mark := range leaf.Marks {
		out = wrapMark(mark, out)
	}
	return out
}

// wrapMark оборачивает текст синтаксисом форматирования.
func wrapMark(mark sltypes.Mark, text string) string {
	switch mark {
	case sltypes.MarkBold:
		return "**" + text + "**"
	case sltypes.MarkItalic:
		return "*" + text + "*"
	case sltypes.MarkCode:
		return "`" + text + "`"
	case sltypes.MarkInserted:
		return "__" + text + "__"
	case sltypes.MarkDeleted:
		return "~~" + text + "~~"
	}
	slog.Warn("Unknown mark type for serialization", "mark", int(mark))
	return ""
}

// renderMention выводит упоминание пользователя. Без имени пользователя
// упоминание не рендерится.
func renderMention(mention *sltypes.Mention) string {
	if mention.Username == "" {
		return ""
	}
	if mention.Anonymous {
		return "!" + mention.Username + " "
	}
	return "@" + mention.Username + " "
}
