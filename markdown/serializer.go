package markdown

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/aisa-it/slatemd/sltypes"
)

// Serializer преобразует sltypes.Document в Markdown.
//
// Rules - пользовательские правила, проверяются до встроенных.
// Strict включает возврат ErrUnhandledNode вместо пропуска неизвестных узлов.
// EncodeURL кодирует адреса изображений и ссылок; по умолчанию URL
// нормализуется через net/url.
type Serializer struct {
	Rules     []Rule
	Strict    bool
	EncodeURL func(string) string
}

// NewSerializer создает сериализатор со встроенными правилами по умолчанию.
func NewSerializer() *Serializer {
	return &Serializer{EncodeURL: encodeURL}
}

// Serialize сериализует документ в Markdown со встроенными правилами.
func Serialize(doc *sltypes.Document) (string, error) {
	return NewSerializer().Serialize(doc)
}

// Serialize рендерит блоки верхнего уровня, объединяет их через перевод
// строки и отрезает ведущие пробельные символы результата. Завершающие
// пробелы отдельных блоков сохраняются.
func (s *Serializer) Serialize(doc *sltypes.Document) (string, error) {
	parts := make([]string, 0, len(doc.Nodes))
	for _, node := range doc.Nodes {
		out, err := s.renderNode(node, nil)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.TrimLeftFunc(strings.Join(parts, "\n"), unicode.IsSpace), nil
}

// renderNode рекурсивно рендерит узел: сначала его дочерние узлы, затем
// пользовательские правила и встроенная обработка. parent - узел-владелец,
// nil для блоков верхнего уровня.
func (s *Serializer) renderNode(node, parent any) (string, error) {
	children, err := s.renderChildren(node)
	if err != nil {
		return "", err
	}

	for _, rule := range s.Rules {
		if out, ok := rule(node, children); ok {
			return out, nil
		}
	}

	return s.renderDefault(node, parent, children)
}

// renderChildren рендерит внутреннее содержимое узла без внешнего синтаксиса
// самого узла. Для узлов без дочерних элементов возвращает пустую строку.
func (s *Serializer) renderChildren(node any) (string, error) {
	switch n := node.(type) {
	case *sltypes.Paragraph:
		return s.renderContent(n.Content, n)
	case *sltypes.Heading:
		return s.renderContent(n.Content, n)
	case *sltypes.BlockQuote:
		return s.renderContent(n.Content, n)
	case *sltypes.List:
		return s.renderItems(n)
	case *sltypes.ListItem:
		return s.renderContent(n.Content, n)
	case *sltypes.Table:
		return s.renderRows(n)
	case *sltypes.TableCell:
		return s.renderContent(n.Content, n)
	case *sltypes.Code:
		return n.Content, nil
	case *sltypes.Link:
		return s.renderContent(n.Content, n)
	case *sltypes.CodeLine:
		return s.renderContent(n.Content, n)
	case *sltypes.Text:
		return renderLeaves(n), nil
	}
	return "", nil
}

// renderContent рендерит последовательность дочерних узлов и склеивает
// результаты. Необработанные узлы дают пустую строку и не прерывают рендеринг.
func (s *Serializer) renderContent(nodes []any, parent any) (string, error) {
	var b strings.Builder
	for _, node := range nodes {
		out, err := s.renderNode(node, parent)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// renderDefault применяет встроенное правило для узла.
func (s *Serializer) renderDefault(node, parent any, children string) (string, error) {
	switch n := node.(type) {
	case *sltypes.Paragraph:
		// Пункт списка сам завершает себя переводом строки, поэтому параграф
		// внутри пункта не получает обертку.
		if _, inItem := parent.(*sltypes.ListItem); inItem {
			return softBreak(children), nil
		}
		return "\n" + softBreak(children) + "\n", nil
	case *sltypes.Heading:
		level := min(max(n.Level, 1), 6)
		// Мягкие переносы применяются только к заголовку первого уровня.
		if level == 1 {
			children = softBreak(children)
		}
		return strings.Repeat("#", level) + " " + children, nil
	case *sltypes.List:
		if parent == nil {
			return "\n" + children, nil
		}
		return "\n" + indentLines(children), nil
	case *sltypes.ListItem:
		return renderListItem(n, parent, children), nil
	case *sltypes.Table:
		// Сама таблица синтаксиса не добавляет: строки уже содержат
		// разделитель заголовка.
		return children, nil
	case *sltypes.TableCell:
		return "| " + children + " ", nil
	case *sltypes.Code:
		return "```\n" + children + "\n```\n", nil
	case *sltypes.BlockQuote:
		return "> " + children, nil
	case *sltypes.HorizontalRule:
		return "---\n", nil
	case *sltypes.Image:
		return "![" + n.Alt + "](" + s.encode(n.Src) + ")\n", nil
	case *sltypes.Linkbar:
		return s.renderLinkbar(n), nil
	case *sltypes.Link:
		return "[" + strings.TrimSpace(children) + "](" + s.encode(n.Href) + ")", nil
	case *sltypes.CodeLine:
		return "`" + children + "`", nil
	case *sltypes.Mention:
		return renderMention(n), nil
	case *sltypes.Text:
		return children, nil
	}

	if s.Strict {
		return "", fmt.Errorf("%w: %T", ErrUnhandledNode, node)
	}
	slog.Warn("Unknown node type for serialization", "type", fmt.Sprintf("%T", node))
	return "", nil
}

// encode кодирует URL через настроенный кодировщик.
func (s *Serializer) encode(raw string) string {
	if raw == "" {
		return ""
	}
	if s.EncodeURL != nil {
		return s.EncodeURL(raw)
	}
	return encodeURL(raw)
}
