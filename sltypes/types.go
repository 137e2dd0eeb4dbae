package sltypes

import (
	"bytes"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
)

// SlateJSONParser - функция для парсинга Slate JSON, устанавливается из sljson пакета
var SlateJSONParser func(io.Reader) (*Document, error)

// SlateJSONSerializer - функция для сериализации Document в Slate JSON, устанавливается из sljson пакета
var SlateJSONSerializer func(*Document) ([]byte, error)

// Document - дерево документа редактора: упорядоченный список блоков верхнего уровня.
type Document struct {
	Nodes []any
}

// UnmarshalJSON реализует кастомную десериализацию Slate JSON в Document.
// Автоматически вызывает зарегистрированный SlateJSONParser.
func (d *Document) UnmarshalJSON(data []byte) error {
	if SlateJSONParser == nil {
		return errors.New("SlateJSONParser not registered, import sljson package to enable Slate JSON parsing")
	}

	doc, err := SlateJSONParser(bytes.NewReader(data))
	if err != nil {
		return err
	}

	d.Nodes = doc.Nodes
	return nil
}

// MarshalJSON реализует кастомную сериализацию Document в Slate JSON.
// Автоматически вызывает зарегистрированный SlateJSONSerializer.
func (d *Document) MarshalJSON() ([]byte, error) {
	if SlateJSONSerializer == nil {
		return nil, errors.New("SlateJSONSerializer not registered, import sljson package to enable Slate JSON serialization")
	}

	return SlateJSONSerializer(d)
}

// Value реализует интерфейс driver.Valuer для сохранения Document в PostgreSQL JSONB.
// Использует существующий MarshalJSON который вызывает зарегистрированный SlateJSONSerializer.
func (d Document) Value() (driver.Value, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan реализует интерфейс sql.Scanner для чтения Document из PostgreSQL JSONB.
// Использует существующий UnmarshalJSON который вызывает зарегистрированный SlateJSONParser.
func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = Document{Nodes: make([]any, 0)}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	return d.UnmarshalJSON(bytes)
}

// GormDataType указывает GORM использовать тип JSONB для PostgreSQL колонок.
func (Document) GormDataType() string {
	return "jsonb"
}

// ListKind определяет вид списка.
type ListKind int

const (
	BulletedList ListKind = iota
	OrderedList
	TodoList
)

// TableAlign задает выравнивание колонки таблицы. NoAlign - выравнивание не задано.
type TableAlign int

const (
	NoAlign TableAlign = iota
	LeftAlign
	CenterAlign
	RightAlign
)

// Mark - форматирование фрагмента текста. Порядок marks в Leaf определяет
// вложенность синтаксиса при сериализации: первый применяется самым внутренним.
type Mark int

const (
	MarkBold Mark = iota
	MarkItalic
	MarkCode
	MarkInserted
	MarkDeleted
)

// String возвращает строковый тип форматирования в терминах Slate.
func (m Mark) String() string {
	switch m {
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkCode:
		return "code"
	case MarkInserted:
		return "inserted"
	case MarkDeleted:
		return "deleted"
	}
	return "unknown"
}

type Paragraph struct {
	Content []any
}

type Heading struct {
	Level   int // 1..6
	Content []any
}

type List struct {
	Kind  ListKind
	Items []*ListItem
}

type ListItem struct {
	Checked bool // учитывается только в TodoList
	Content []any
}

type Table struct {
	Rows [][]*TableCell
}

type TableCell struct {
	Header  bool
	Align   TableAlign // учитывается только для заголовочных ячеек
	Content []any
}

type Code struct {
	Content string
}

type BlockQuote struct {
	Content []any
}

type HorizontalRule struct{}

type Image struct {
	Src string
	Alt string
}

// Linkbar - карточка внешней ссылки с предпросмотром.
type Linkbar struct {
	URL         string
	Image       string
	Title       string
	Description string
	Domain      string
}

type Link struct {
	Href    string
	Content []any
}

type CodeLine struct {
	Content []any
}

// Mention - упоминание пользователя. Anonymous выводит упоминание без оповещения.
type Mention struct {
	Username  string
	Anonymous bool
}

// Text - текстовый узел: последовательность фрагментов с форматированием.
type Text struct {
	Leaves []Leaf
}

// Leaf - фрагмент текста с набором форматирований.
type Leaf struct {
	Text  string
	Marks []Mark
}
