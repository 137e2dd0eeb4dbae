package slatemd

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/aisa-it/slatemd/sltypes"
)

// inlineBuilder накапливает inline-содержимое HTML-элемента: соседние
// текстовые фрагменты собираются в один текстовый узел, ссылки и изображения
// добавляются отдельными узлами.
type inlineBuilder struct {
	content []any
	text    *sltypes.Text
}

func (b *inlineBuilder) addLeaf(leaf sltypes.Leaf) {
	if b.text == nil {
		b.text = &sltypes.Text{}
	}
	b.text.Leaves = append(b.text.Leaves, leaf)
}

func (b *inlineBuilder) flush() {
	if b.text != nil {
		b.content = append(b.content, b.text)
		b.text = nil
	}
}

func (b *inlineBuilder) finish() []any {
	b.flush()
	return b.content
}

// parse разбирает inline-узел HTML. Теги форматирования накапливают marks
// для вложенного текста; более глубокий тег добавляется самым внутренним.
func (b *inlineBuilder) parse(el *html.Node, marks []sltypes.Mark) {
	if el.Type == html.TextNode {
		b.addLeaf(sltypes.Leaf{Text: el.Data, Marks: marks})
		return
	}
	if el.Type != html.ElementNode {
		return
	}

	switch el.Data {
	case "br":
		b.addLeaf(sltypes.Leaf{Text: "\n", Marks: marks})
	case "strong", "b":
		b.parseChildren(el, pushMark(sltypes.MarkBold, marks))
	case "em", "i":
		b.parseChildren(el, pushMark(sltypes.MarkItalic, marks))
	case "code":
		b.parseChildren(el, pushMark(sltypes.MarkCode, marks))
	case "ins", "u":
		b.parseChildren(el, pushMark(sltypes.MarkInserted, marks))
	case "del", "s":
		b.parseChildren(el, pushMark(sltypes.MarkDeleted, marks))
	case "a":
		b.flush()
		var inner inlineBuilder
		inner.parseChildren(el, marks)
		b.content = append(b.content, &sltypes.Link{
			Href:    getAttrValue("href", el.Attr),
			Content: inner.finish(),
		})
	case "img":
		b.flush()
		if img := getImage(el); img != nil {
			b.content = append(b.content, img)
		}
	case "span", "mark":
		b.parseChildren(el, marks)
	default:
		slog.Debug("Skip inline HTML element", "tag", el.Data)
		b.parseChildren(el, marks)
	}
}

func (b *inlineBuilder) parseChildren(el *html.Node, marks []sltypes.Mark) {
	for child := el.FirstChild; child != nil; child = child.NextSibling {
		b.parse(child, marks)
	}
}

// parseInlineContent разбирает inline-содержимое блочного элемента.
func parseInlineContent(el *html.Node) []any {
	var b inlineBuilder
	b.parseChildren(el, nil)
	return b.finish()
}

// pushMark добавляет mark в начало списка: чем глубже тег форматирования,
// тем более внутренним будет его синтаксис при сериализации.
func pushMark(mark sltypes.Mark, marks []sltypes.Mark) []sltypes.Mark {
	out := make([]sltypes.Mark, 0, len(marks)+1)
	out = append(out, mark)
	return append(out, marks...)
}
