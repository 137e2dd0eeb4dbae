package sljson

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/aisa-it/slatemd/sltypes"
)

// parseText преобразует текстовую ноду Slate в sltypes.Text.
func parseText(node SlateNode) *sltypes.Text {
	text := &sltypes.Text{Leaves: make([]sltypes.Leaf, 0, len(node.Leaves))}
	for _, leaf := range node.Leaves {
		l := sltypes.Leaf{Text: leaf.Text}
		for _, mark := range leaf.Marks {
			m, ok := parseMark(mark.Type)
			if !ok {
				slog.Debug("Unknown mark type", "type", mark.Type)
				continue
			}
			l.Marks = append(l.Marks, m)
		}
		text.Leaves = append(text.Leaves, l)
	}
	return text
}

// parseHeading извлекает уровень заголовка из суффикса типа ноды.
func parseHeading(node SlateNode) *sltypes.Heading {
	level, err := strconv.Atoi(strings.TrimPrefix(node.Type, "heading"))
	if err != nil {
		level = 1
	}
	return &sltypes.Heading{Level: level, Content: parseChildren(node.Nodes)}
}

// parseList преобразует ноду списка в sltypes.List.
func parseList(node SlateNode) *sltypes.List {
	list := &sltypes.List{Kind: sltypes.BulletedList}
	switch node.Type {
	case "ordered-list":
		list.Kind = sltypes.OrderedList
	case "todo-list":
		list.Kind = sltypes.TodoList
	}

	for _, child := range node.Nodes {
		if child.Type != "list-item" {
			slog.Warn("Unknown list child type", "type", child.Type)
			continue
		}
		list.Items = append(list.Items, &sltypes.ListItem{
			Checked: getDataBool(child.Data, "checked"),
			Content: parseChildren(child.Nodes),
		})
	}
	return list
}

// parseTable преобразует ноду таблицы: table-row со списком table-head или
// table-cell ячеек.
func parseTable(node SlateNode) *sltypes.Table {
	table := &sltypes.Table{Rows: make([][]*sltypes.TableCell, 0, len(node.Nodes))}
	for _, rowNode := range node.Nodes {
		if rowNode.Type != "table-row" {
			slog.Warn("Unknown table child type", "type", rowNode.Type)
			continue
		}

		row := make([]*sltypes.TableCell, 0, len(rowNode.Nodes))
		for _, cellNode := range rowNode.Nodes {
			switch cellNode.Type {
			case "table-head":
				row = append(row, &sltypes.TableCell{
					Header:  true,
					Align:   parseAlign(getDataString(cellNode.Data, "align")),
					Content: parseChildren(cellNode.Nodes),
				})
			case "table-cell":
				row = append(row, &sltypes.TableCell{Content: parseChildren(cellNode.Nodes)})
			default:
				slog.Warn("Unknown table cell type", "type", cellNode.Type)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// parseCode собирает текст блока кода из его текстовых нод.
func parseCode(node SlateNode) *sltypes.Code {
	var text strings.Builder
	for _, child := range node.Nodes {
		for _, leaf := range child.Leaves {
			text.WriteString(leaf.Text)
		}
	}
	return &sltypes.Code{Content: text.String()}
}
