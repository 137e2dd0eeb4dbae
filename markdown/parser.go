package markdown

import (
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aisa-it/slatemd/sltypes"
)

// Разбор GFM: таблицы, зачеркивание и списки задач.
var gfm = goldmark.New(goldmark.WithExtensions(
	extension.Table,
	extension.Strikethrough,
	extension.TaskList,
))

// Экранирование, добавленное Escape, сворачивается обратно при разборе.
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\@`, "@",
	`\!`, "!",
	`\[`, "[",
	`\]`, "]",
	`\%`, "%",
)

// Deserialize разбирает Markdown-текст в дерево документа. Неизвестные
// конструкции пропускаются с записью в лог, разбор при этом продолжается.
func Deserialize(source string) (*sltypes.Document, error) {
	src := []byte(source)
	root := gfm.Parser().Parse(text.NewReader(src))

	doc := &sltypes.Document{Nodes: make([]any, 0)}
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if block := parseBlock(child, src); block != nil {
			doc.Nodes = append(doc.Nodes, block)
		}
	}
	return doc, nil
}

// parseBlock преобразует блочный узел goldmark в узел sltypes.
func parseBlock(node ast.Node, src []byte) any {
	switch n := node.(type) {
	case *ast.Paragraph:
		return parseParagraph(n, src)
	case *ast.TextBlock:
		return &sltypes.Paragraph{Content: parseInlines(n, src, nil)}
	case *ast.Heading:
		return &sltypes.Heading{Level: n.Level, Content: parseInlines(n, src, nil)}
	case *ast.List:
		return parseList(n, src)
	case *ast.Blockquote:
		return parseBlockquote(n, src)
	case *ast.FencedCodeBlock:
		return &sltypes.Code{Content: blockLines(n, src)}
	case *ast.CodeBlock:
		return &sltypes.Code{Content: blockLines(n, src)}
	case *ast.ThematicBreak:
		return &sltypes.HorizontalRule{}
	case *east.Table:
		return parseTable(n, src)
	case *ast.HTMLBlock:
		slog.Debug("Skip HTML block in markdown source")
		return nil
	default:
		slog.Warn("Unknown markdown block kind", "kind", node.Kind().String())
		return nil
	}
}

// parseParagraph преобразует параграф. Параграф из единственного изображения
// становится блоком Image.
func parseParagraph(n *ast.Paragraph, src []byte) any {
	if img, ok := n.FirstChild().(*ast.Image); ok && n.ChildCount() == 1 {
		return &sltypes.Image{Src: string(img.Destination), Alt: nodeText(img, src)}
	}
	return &sltypes.Paragraph{Content: parseInlines(n, src, nil)}
}

// parseList преобразует список goldmark. Чекбокс задачи в начале первого
// блока пункта переключает весь список в TodoList.
func parseList(n *ast.List, src []byte) *sltypes.List {
	list := &sltypes.List{Kind: sltypes.BulletedList}
	if n.IsOrdered() {
		list.Kind = sltypes.OrderedList
	}

	for li := n.FirstChild(); li != nil; li = li.NextSibling() {
		item := &sltypes.ListItem{Content: make([]any, 0)}
		for child := li.FirstChild(); child != nil; child = child.NextSibling() {
			if box, ok := child.FirstChild().(*east.TaskCheckBox); ok {
				list.Kind = sltypes.TodoList
				item.Checked = box.IsChecked
			}
			if block := parseBlock(child, src); block != nil {
				item.Content = append(item.Content, block)
			}
		}
		list.Items = append(list.Items, item)
	}
	return list
}

func parseBlockquote(n *ast.Blockquote, src []byte) *sltypes.BlockQuote {
	quote := &sltypes.BlockQuote{Content: make([]any, 0)}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if block := parseBlock(child, src); block != nil {
			quote.Content = append(quote.Content, block)
		}
	}
	return quote
}

func parseTable(n *east.Table, src []byte) *sltypes.Table {
	table := new(sltypes.Table)
	for rowNode := n.FirstChild(); rowNode != nil; rowNode = rowNode.NextSibling() {
		header := false
		switch rowNode.(type) {
		case *east.TableHeader:
			header = true
		case *east.TableRow:
		default:
			continue
		}

		var row []*sltypes.TableCell
		for cellNode := rowNode.FirstChild(); cellNode != nil; cellNode = cellNode.NextSibling() {
			cell, ok := cellNode.(*east.TableCell)
			if !ok {
				continue
			}
			row = append(row, &sltypes.TableCell{
				Header:  header,
				Align:   parseAlign(cell.Alignment),
				Content: parseInlines(cell, src, nil),
			})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func parseAlign(align east.Alignment) sltypes.TableAlign {
	switch align {
	case east.AlignLeft:
		return sltypes.LeftAlign
	case east.AlignCenter:
		return sltypes.CenterAlign
	case east.AlignRight:
		return sltypes.RightAlign
	}
	return sltypes.NoAlign
}

// parseInlines разбирает inline-содержимое узла. Соседние текстовые фрагменты
// накапливаются в один текстовый узел; marks наследуются от объемлющих
// элементов форматирования, новый mark добавляется самым внутренним.
func parseInlines(parent ast.Node, src []byte, marks []sltypes.Mark) []any {
	content := make([]any, 0)
	var current *sltypes.Text

	flush := func() {
		if current != nil {
			content = append(content, current)
			current = nil
		}
	}
	addLeaf := func(leaf sltypes.Leaf) {
		if current == nil {
			current = &sltypes.Text{}
		}
		current.Leaves = append(current.Leaves, leaf)
	}

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			value := unescaper.Replace(string(n.Segment.Value(src)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				value += "\n"
			}
			addLeaf(sltypes.Leaf{Text: value, Marks: marks})
		case *ast.String:
			addLeaf(sltypes.Leaf{Text: unescaper.Replace(string(n.Value)), Marks: marks})
		case *ast.Emphasis:
			mark := sltypes.MarkItalic
			if n.Level > 1 {
				mark = sltypes.MarkBold
			}
			flush()
			content = append(content, parseInlines(n, src, pushMark(mark, marks))...)
		case *east.Strikethrough:
			flush()
			content = append(content, parseInlines(n, src, pushMark(sltypes.MarkDeleted, marks))...)
		case *ast.CodeSpan:
			addLeaf(sltypes.Leaf{Text: nodeText(n, src), Marks: pushMark(sltypes.MarkCode, marks)})
		case *ast.Link:
			flush()
			content = append(content, &sltypes.Link{
				Href:    string(n.Destination),
				Content: parseInlines(n, src, marks),
			})
		case *ast.AutoLink:
			flush()
			u := string(n.URL(src))
			content = append(content, &sltypes.Link{
				Href:    u,
				Content: []any{&sltypes.Text{Leaves: []sltypes.Leaf{{Text: u}}}},
			})
		case *ast.Image:
			flush()
			content = append(content, &sltypes.Image{Src: string(n.Destination), Alt: nodeText(n, src)})
		case *east.TaskCheckBox:
			// Обработан на уровне списка.
		case *ast.RawHTML:
			slog.Debug("Skip raw HTML in markdown source")
		default:
			slog.Warn("Unknown markdown inline kind", "kind", child.Kind().String())
		}
	}

	flush()
	return content
}

// pushMark добавляет mark в начало списка: чем глубже элемент форматирования,
// тем более внутренним будет его синтаксис при обратной сериализации.
func pushMark(mark sltypes.Mark, marks []sltypes.Mark) []sltypes.Mark {
	out := make([]sltypes.Mark, 0, len(marks)+1)
	out = append(out, mark)
	return append(out, marks...)
}

// nodeText собирает текстовое содержимое узла goldmark.
func nodeText(node ast.Node, src []byte) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(src))
		case *ast.String:
			b.Write(n.Value)
		default:
			b.WriteString(nodeText(child, src))
		}
	}
	return b.String()
}

// blockLines собирает исходные строки блока кода без завершающего перевода
// строки: его добавит правило сериализации.
func blockLines(node ast.Node, src []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
