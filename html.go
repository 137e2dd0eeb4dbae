// Пакет slatemd преобразует документы rich-text редактора между HTML,
// Slate JSON и Markdown представлениями.
//
// Основные возможности:
//   - Парсинг HTML-документов из io.Reader в дерево документа.
//   - Сериализация дерева документа в Markdown (пакет markdown).
//   - Разбор и сериализация Slate JSON (пакет sljson).
//   - Извлечение текста, форматирования и атрибутов из HTML-элементов.
package slatemd

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/aisa-it/slatemd/sltypes"
)

// Политика очистки входного HTML перед разбором.
var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "ins", "del", "hr", "br")
	p.AllowTables()
	p.AllowImages()
	p.AllowAttrs("data-type").OnElements("ul", "ol")
	p.AllowAttrs("data-checked").OnElements("li")
	p.AllowStyles("text-align").OnElements("th", "td")
	return p
}

// ParseHTML парсит HTML-контент редактора в структуру sltypes.Document.
// Входной HTML предварительно проходит очистку bluemonday.
func ParseHTML(r io.Reader) (*sltypes.Document, error) {
	rootNode, err := html.Parse(sanitizePolicy.SanitizeReader(r))
	if err != nil {
		return nil, err
	}

	var document sltypes.Document

	for el := getBody(rootNode).FirstChild; el != nil; el = el.NextSibling {
		if el.Type != html.ElementNode {
			continue
		}
		if block := parseElement(el); block != nil {
			document.Nodes = append(document.Nodes, block)
		}
	}

	return &document, nil
}

// parseElement преобразует блочный HTML-элемент в узел sltypes.
func parseElement(el *html.Node) any {
	switch el.Data {
	case "p":
		if p := parseParagraph(el); p != nil {
			return p
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return &sltypes.Heading{
			Level:   int(el.Data[1] - '0'),
			Content: parseInlineContent(el),
		}
	case "ul", "ol":
		if list := parseList(el); list != nil {
			return list
		}
	case "blockquote":
		return parseBlockquote(el)
	case "pre":
		return parseCode(el)
	case "table":
		if t := parseTable(el); t != nil {
			return t
		}
	case "img":
		if img := getImage(el); img != nil {
			return img
		}
	case "hr":
		return &sltypes.HorizontalRule{}
	default:
		slog.Debug("Skip HTML element", "tag", el.Data)
	}
	return nil
}

func parseParagraph(root *html.Node) *sltypes.Paragraph {
	if root.Type != html.ElementNode || root.Data != "p" {
		return nil
	}
	return &sltypes.Paragraph{Content: parseInlineContent(root)}
}

func parseList(root *html.Node) *sltypes.List {
	if root.Type != html.ElementNode || (root.Data != "ul" && root.Data != "ol") {
		return nil
	}

	list := &sltypes.List{Kind: sltypes.BulletedList}
	if root.Data == "ol" {
		list.Kind = sltypes.OrderedList
	}
	if getAttrValue("data-type", root.Attr) == "taskList" {
		list.Kind = sltypes.TodoList
	}

	for li := root.FirstChild; li != nil; li = li.NextSibling {
		if item := parseListItem(li); item != nil {
			list.Items = append(list.Items, item)
		}
	}

	return list
}

// parseListItem собирает пункт списка: текст и inline-элементы накапливаются
// напрямую, параграфы и вложенные списки добавляются как блоки.
func parseListItem(li *html.Node) *sltypes.ListItem {
	if li.Type != html.ElementNode || li.Data != "li" {
		return nil
	}

	item := &sltypes.ListItem{Checked: getAttrValue("data-checked", li.Attr) == "true"}

	var builder inlineBuilder
	flushInline := func() {
		item.Content = append(item.Content, builder.finish()...)
		builder = inlineBuilder{}
	}

	for el := li.FirstChild; el != nil; el = el.NextSibling {
		if el.Type == html.ElementNode {
			switch el.Data {
			case "p":
				flushInline()
				if p := parseParagraph(el); p != nil {
					item.Content = append(item.Content, p)
				}
				continue
			case "ul", "ol":
				flushInline()
				if nested := parseList(el); nested != nil {
					item.Content = append(item.Content, nested)
				}
				continue
			}
		}
		builder.parse(el, nil)
	}
	flushInline()

	return item
}

func parseBlockquote(root *html.Node) *sltypes.BlockQuote {
	quote := &sltypes.BlockQuote{}
	iterNodes(root, func(child *html.Node) bool {
		if p := parseParagraph(child); p != nil {
			quote.Content = append(quote.Content, p)
			return true
		}
		return false
	})
	return quote
}

func parseCode(root *html.Node) *sltypes.Code {
	var text strings.Builder
	iterNodes(root, func(child *html.Node) bool {
		if child.Type != html.TextNode {
			return false
		}
		text.WriteString(child.Data)
		return false
	})
	return &sltypes.Code{Content: strings.TrimSuffix(text.String(), "\n")}
}

func parseTable(root *html.Node) *sltypes.Table {
	table := new(sltypes.Table)

	var trs []*html.Node
	iterNodes(root, func(child *html.Node) bool {
		if child.Type == html.ElementNode && child.Data == "tr" {
			trs = append(trs, child)
			return true
		}
		return false
	})

	for _, tr := range trs {
		var row []*sltypes.TableCell
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			row = append(row, &sltypes.TableCell{
				Header:  td.Data == "th",
				Align:   cellAlign(td),
				Content: cellContent(td),
			})
		}
		if len(row) > 0 {
			table.Rows = append(table.Rows, row)
		}
	}

	if len(table.Rows) == 0 {
		return nil
	}
	return table
}

// cellAlign извлекает выравнивание ячейки из CSS-стиля text-align.
func cellAlign(td *html.Node) sltypes.TableAlign {
	for _, styleRaw := range strings.Split(getAttrValue("style", td.Attr), ";") {
		kv := strings.SplitN(styleRaw, ":", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.TrimSpace(kv[0]) != "text-align" {
			continue
		}
		switch strings.TrimSpace(kv[1]) {
		case "left":
			return sltypes.LeftAlign
		case "center":
			return sltypes.CenterAlign
		case "right":
			return sltypes.RightAlign
		}
	}
	return sltypes.NoAlign
}

// cellContent собирает inline-содержимое ячейки; параграфы внутри ячейки
// разделяются переводом строки.
func cellContent(td *html.Node) []any {
	var builder inlineBuilder
	first := true
	for el := td.FirstChild; el != nil; el = el.NextSibling {
		if el.Type == html.ElementNode && el.Data == "p" {
			if !first {
				builder.addLeaf(sltypes.Leaf{Text: "\n"})
			}
			first = false
			for child := el.FirstChild; child != nil; child = child.NextSibling {
				builder.parse(child, nil)
			}
			continue
		}
		builder.parse(el, nil)
	}
	return builder.finish()
}

func getImage(el *html.Node) *sltypes.Image {
	if el.Type != html.ElementNode || el.Data != "img" {
		return nil
	}

	src := getAttrValue("src", el.Attr)
	if src == "" {
		return nil
	}
	if u, err := url.Parse(src); err == nil {
		src = u.String()
	}

	return &sltypes.Image{Src: src, Alt: getAttrValue("alt", el.Attr)}
}

func findElementByTagName(rootNode *html.Node, tagName string) *html.Node {
	var el *html.Node
	iterNodes(rootNode, func(child *html.Node) bool {
		if child.Type == html.ElementNode && child.Data == tagName {
			el = child
			return true
		}
		return false
	})
	return el
}

func getBody(rootNode *html.Node) *html.Node {
	return findElementByTagName(rootNode, "body")
}

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for p := node.FirstChild; p != nil; p = p.NextSibling {
		iterNodes(p, f)
	}
}

func getAttrValue(key string, attrs []html.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
