package sljson

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aisa-it/slatemd/sltypes"
)

// Serialize сериализует sltypes.Document в Slate JSON.
func Serialize(doc *sltypes.Document) ([]byte, error) {
	slateDoc := SlateDocument{
		Document: SlateNode{
			Object: "document",
			Nodes:  make([]SlateNode, 0, len(doc.Nodes)),
		},
	}

	for _, node := range doc.Nodes {
		if n := serializeNode(node); n != nil {
			slateDoc.Document.Nodes = append(slateDoc.Document.Nodes, *n)
		}
	}

	return json.Marshal(slateDoc)
}

// serializeNode преобразует узел sltypes в ноду Slate.
func serializeNode(node any) *SlateNode {
	switch n := node.(type) {
	case *sltypes.Paragraph:
		return blockNode("paragraph", nil, serializeChildren(n.Content))
	case *sltypes.Heading:
		level := n.Level
		if level < 1 || level > 6 {
			level = 1
		}
		return blockNode(fmt.Sprintf("heading%d", level), nil, serializeChildren(n.Content))
	case *sltypes.List:
		return serializeList(n)
	case *sltypes.Table:
		return serializeTable(n)
	case *sltypes.Code:
		return serializeCode(n)
	case *sltypes.BlockQuote:
		return blockNode("block-quote", nil, serializeChildren(n.Content))
	case *sltypes.HorizontalRule:
		return blockNode("horizontal-rule", nil, nil)
	case *sltypes.Image:
		data := make(map[string]any)
		if n.Src != "" {
			data["src"] = n.Src
		}
		if n.Alt != "" {
			data["alt"] = n.Alt
		}
		return blockNode("image", data, nil)
	case *sltypes.Linkbar:
		return serializeLinkbar(n)
	case *sltypes.Link:
		data := make(map[string]any)
		if n.Href != "" {
			data["href"] = n.Href
		}
		return inlineNode("link", data, serializeChildren(n.Content))
	case *sltypes.CodeLine:
		return inlineNode("code-line", nil, serializeChildren(n.Content))
	case *sltypes.Mention:
		return serializeMention(n)
	case *sltypes.Text:
		return serializeText(n)
	default:
		slog.Warn("Unknown element type for serialization", "type", fmt.Sprintf("%T", n))
		return nil
	}
}

// serializeChildren преобразует содержимое узла в список нод Slate.
func serializeChildren(content []any) []SlateNode {
	nodes := make([]SlateNode, 0, len(content))
	for _, child := range content {
		if n := serializeNode(child); n != nil {
			nodes = append(nodes, *n)
		}
	}
	return nodes
}

// serializeText преобразует текстовый узел с фрагментами форматирования.
func serializeText(text *sltypes.Text) *SlateNode {
	node := &SlateNode{
		Object: "text",
		Leaves: make([]SlateLeaf, 0, len(text.Leaves)),
	}
	for _, leaf := range text.Leaves {
		node.Leaves = append(node.Leaves, SlateLeaf{
			Object: "leaf",
			Text:   leaf.Text,
			Marks:  serializeMarks(leaf.Marks),
		})
	}
	return node
}

// serializeList преобразует список в ноду Slate с пунктами list-item.
func serializeList(list *sltypes.List) *SlateNode {
	listType := "bulleted-list"
	switch list.Kind {
	case sltypes.OrderedList:
		listType = "ordered-list"
	case sltypes.TodoList:
		listType = "todo-list"
	}

	nodes := make([]SlateNode, 0, len(list.Items))
	for _, item := range list.Items {
		var data map[string]any
		// Признак выполнения пишется только для списка задач
		if list.Kind == sltypes.TodoList {
			data = map[string]any{"checked": item.Checked}
		}
		nodes = append(nodes, *blockNode("list-item", data, serializeChildren(item.Content)))
	}
	return blockNode(listType, nil, nodes)
}

// serializeTable преобразует таблицу в ноды table-row с ячейками table-head
// или table-cell.
func serializeTable(table *sltypes.Table) *SlateNode {
	rows := make([]SlateNode, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]SlateNode, 0, len(row))
		for _, cell := range row {
			cellType := "table-cell"
			var data map[string]any
			if cell.Header {
				cellType = "table-head"
				if align := alignString(cell.Align); align != "" {
					data = map[string]any{"align": align}
				}
			}
			cells = append(cells, *blockNode(cellType, data, serializeChildren(cell.Content)))
		}
		rows = append(rows, *blockNode("table-row", nil, cells))
	}
	return blockNode("table", nil, rows)
}

// serializeCode хранит текст блока кода в единственной текстовой ноде.
func serializeCode(code *sltypes.Code) *SlateNode {
	return blockNode("code", nil, []SlateNode{{
		Object: "text",
		Leaves: []SlateLeaf{{Object: "leaf", Text: code.Content}},
	}})
}

// serializeLinkbar преобразует карточку ссылки в ноду linkbar.
func serializeLinkbar(bar *sltypes.Linkbar) *SlateNode {
	data := make(map[string]any)
	if bar.URL != "" {
		data["url"] = bar.URL
	}
	if bar.Image != "" {
		data["image"] = bar.Image
	}
	if bar.Title != "" {
		data["title"] = bar.Title
	}
	if bar.Description != "" {
		data["description"] = bar.Description
	}
	if bar.Domain != "" {
		data["domain"] = bar.Domain
	}
	return blockNode("linkbar", data, nil)
}

// serializeMention преобразует упоминание пользователя.
func serializeMention(mention *sltypes.Mention) *SlateNode {
	data := make(map[string]any)
	if mention.Username != "" {
		data["username"] = mention.Username
	}
	if mention.Anonymous {
		data["anonymous"] = true
	}
	return inlineNode("mention", data, nil)
}

func blockNode(nodeType string, data map[string]any, nodes []SlateNode) *SlateNode {
	return &SlateNode{Object: "block", Type: nodeType, Data: data, Nodes: nodes}
}

func inlineNode(nodeType string, data map[string]any, nodes []SlateNode) *SlateNode {
	return &SlateNode{Object: "inline", Type: nodeType, Data: data, Nodes: nodes}
}
