// Пакет sljson предоставляет инструменты для разбора JSON-контента
// Slate-редактора. Преобразует JSON структуры Slate в структуры данных
// пакета sltypes и обратно.
package sljson

// SlateDocument представляет корневой документ Slate.
type SlateDocument struct {
	Document SlateNode `json:"document"`
}

// SlateNode представляет узел в дереве документа Slate.
// Используется универсальная структура с map для данных для поддержки
// различных типов нод. Дискриминатор группы встречается в двух вариантах:
// kind в старых версиях формата и object в новых.
type SlateNode struct {
	Object string         `json:"object,omitempty"`
	Kind   string         `json:"kind,omitempty"`
	Type   string         `json:"type,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
	Nodes  []SlateNode    `json:"nodes,omitempty"`
	Leaves []SlateLeaf    `json:"leaves,omitempty"`
}

// SlateLeaf представляет фрагмент текста с форматированием.
type SlateLeaf struct {
	Object string      `json:"object,omitempty"`
	Kind   string      `json:"kind,omitempty"`
	Text   string      `json:"text"`
	Marks  []SlateMark `json:"marks,omitempty"`
}

// SlateMark представляет форматирование текста (bold, italic и т.д.).
type SlateMark struct {
	Object string `json:"object,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Type   string `json:"type"`
}

// kindTag возвращает дискриминатор группы ноды независимо от версии формата.
func (n SlateNode) kindTag() string {
	if n.Object != "" {
		return n.Object
	}
	return n.Kind
}
