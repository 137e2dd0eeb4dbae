package sljson

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/aisa-it/slatemd/sltypes"
)

// Регистрация парсера и сериализатора для Document.MarshalJSON/UnmarshalJSON.
func init() {
	sltypes.SlateJSONParser = ParseJSON
	sltypes.SlateJSONSerializer = Serialize
}

// ParseJSON парсит JSON контент Slate-редактора в структуру sltypes.Document.
// Принимает io.Reader с JSON данными и возвращает распарсенный документ.
func ParseJSON(r io.Reader) (*sltypes.Document, error) {
	// Десериализовать JSON в SlateDocument
	var slateDoc SlateDocument
	if err := json.NewDecoder(r).Decode(&slateDoc); err != nil {
		return nil, err
	}

	// Создать результирующий документ
	doc := &sltypes.Document{
		Nodes: make([]any, 0),
	}

	// Обработать каждую ноду верхнего уровня
	for _, node := range slateDoc.Document.Nodes {
		block := parseNode(node)
		if block != nil {
			doc.Nodes = append(doc.Nodes, block)
		}
	}

	return doc, nil
}

// parseNode парсит блочную ноду Slate и возвращает соответствующий узел sltypes.
func parseNode(node SlateNode) any {
	switch node.Type {
	case "paragraph":
		return &sltypes.Paragraph{Content: parseChildren(node.Nodes)}
	case "heading1", "heading2", "heading3", "heading4", "heading5", "heading6":
		return parseHeading(node)
	case "bulleted-list", "ordered-list", "todo-list":
		return parseList(node)
	case "table":
		return parseTable(node)
	case "code":
		return parseCode(node)
	case "block-quote":
		return &sltypes.BlockQuote{Content: parseChildren(node.Nodes)}
	case "horizontal-rule":
		return &sltypes.HorizontalRule{}
	case "image":
		return &sltypes.Image{
			Src: getDataString(node.Data, "src"),
			Alt: getDataString(node.Data, "alt"),
		}
	case "linkbar":
		return &sltypes.Linkbar{
			URL:         getDataString(node.Data, "url"),
			Image:       getDataString(node.Data, "image"),
			Title:       getDataString(node.Data, "title"),
			Description: getDataString(node.Data, "description"),
			Domain:      getDataString(node.Data, "domain"),
		}
	default:
		slog.Warn("Unknown node type", "type", node.Type)
		return nil
	}
}

// parseChildren разбирает дочерние ноды, выбирая обработчик по дискриминатору
// группы: text, inline или block.
func parseChildren(nodes []SlateNode) []any {
	content := make([]any, 0, len(nodes))
	for _, child := range nodes {
		var parsed any
		switch child.kindTag() {
		case "text":
			parsed = parseText(child)
		case "inline":
			parsed = parseInline(child)
		case "block":
			parsed = parseNode(child)
		default:
			slog.Warn("Unknown node kind", "kind", child.kindTag())
		}
		if parsed != nil {
			content = append(content, parsed)
		}
	}
	return content
}

// parseInline парсит inline-ноду Slate.
func parseInline(node SlateNode) any {
	switch node.Type {
	case "link":
		return &sltypes.Link{
			Href:    getDataString(node.Data, "href"),
			Content: parseChildren(node.Nodes),
		}
	case "code-line":
		return &sltypes.CodeLine{Content: parseChildren(node.Nodes)}
	case "mention":
		return &sltypes.Mention{
			Username:  getDataString(node.Data, "username"),
			Anonymous: getDataBool(node.Data, "anonymous"),
		}
	default:
		slog.Warn("Unknown inline type", "type", node.Type)
		return nil
	}
}
