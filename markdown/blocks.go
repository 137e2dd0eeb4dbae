package markdown

import (
	"strings"

	"github.com/aisa-it/slatemd/sltypes"
)

// renderItems рендерит пункты списка. Вид маркера передается пункту через
// родительский список, а не хранится в самом пункте.
func (s *Serializer) renderItems(list *sltypes.List) (string, error) {
	var b strings.Builder
	for _, item := range list.Items {
		out, err := s.renderNode(item, list)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// renderListItem собирает пункт списка: маркер по виду родительского списка,
// мягкие переносы в содержимом, завершающий перевод строки.
func renderListItem(item *sltypes.ListItem, parent any, children string) string {
	marker := "* "
	if list, ok := parent.(*sltypes.List); ok {
		switch list.Kind {
		case sltypes.OrderedList:
			// Всегда "1." - перенумерацию выполняет Markdown-рендерер.
			marker = "1. "
		case sltypes.TodoList:
			if item.Checked {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}
	}
	return marker + softBreak(children) + "\n"
}

// renderRows рендерит строки таблицы. Разделитель заголовка накапливается в
// локальной переменной и выводится сразу под строкой с заголовочными
// ячейками, как того требует синтаксис таблиц GFM. Состояние живет только в
// рамках одного вызова, поэтому параллельная сериализация документов безопасна.
func (s *Serializer) renderRows(table *sltypes.Table) (string, error) {
	var b strings.Builder
	for _, row := range table.Rows {
		var header strings.Builder
		for _, cell := range row {
			out, err := s.renderNode(cell, table)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			if cell.Header {
				header.WriteString(alignMarker(cell.Align))
			}
		}
		b.WriteString("|\n")
		if header.Len() > 0 {
			b.WriteString(header.String())
			b.WriteString("|\n")
		}
	}
	return b.String(), nil
}

// alignMarker возвращает ячейку разделительной строки таблицы.
func alignMarker(align sltypes.TableAlign) string {
	switch align {
	case sltypes.LeftAlign:
		return "|:--- "
	case sltypes.CenterAlign:
		return "|:---:"
	case sltypes.RightAlign:
		return "| ---:"
	}
	return "| --- "
}

// renderLinkbar выводит карточку ссылки в виде блока, огражденного %%%.
// Строки внутри блока: URL изображения (если есть), URL, заголовок, описание
// без групп в квадратных скобках, домен.
func (s *Serializer) renderLinkbar(bar *sltypes.Linkbar) string {
	var b strings.Builder
	b.WriteString("%%%\n")
	if bar.Image != "" {
		b.WriteString(s.encode(bar.Image))
		b.WriteString("\n")
	}
	b.WriteString(s.encode(bar.URL))
	b.WriteString("\n")
	b.WriteString(bar.Title)
	b.WriteString("\n")
	b.WriteString(stripBracketGroups(bar.Description))
	b.WriteString("\n")
	b.WriteString(bar.Domain)
	b.WriteString("\n%%%\n")
	return b.String()
}
