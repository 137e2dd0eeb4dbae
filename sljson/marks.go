package sljson

import "github.com/aisa-it/slatemd/sltypes"

// parseMark преобразует строковый тип форматирования Slate в sltypes.Mark.
func parseMark(markType string) (sltypes.Mark, bool) {
	switch markType {
	case "bold":
		return sltypes.MarkBold, true
	case "italic":
		return sltypes.MarkItalic, true
	case "code":
		return sltypes.MarkCode, true
	case "inserted":
		return sltypes.MarkInserted, true
	case "deleted":
		return sltypes.MarkDeleted, true
	}
	return 0, false
}

// serializeMarks преобразует список форматирований в ноды Slate.
func serializeMarks(marks []sltypes.Mark) []SlateMark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]SlateMark, 0, len(marks))
	for _, mark := range marks {
		out = append(out, SlateMark{Object: "mark", Type: mark.String()})
	}
	return out
}
