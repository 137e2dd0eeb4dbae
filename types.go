package slatemd

import (
	"github.com/aisa-it/slatemd/markdown"
	"github.com/aisa-it/slatemd/sltypes"
)

// Реэкспорт всех типов из sltypes для удобства использования корневого пакета
type (
	Document       = sltypes.Document
	Paragraph      = sltypes.Paragraph
	Heading        = sltypes.Heading
	List           = sltypes.List
	ListItem       = sltypes.ListItem
	ListKind       = sltypes.ListKind
	Table          = sltypes.Table
	TableCell      = sltypes.TableCell
	TableAlign     = sltypes.TableAlign
	Code           = sltypes.Code
	BlockQuote     = sltypes.BlockQuote
	HorizontalRule = sltypes.HorizontalRule
	Image          = sltypes.Image
	Linkbar        = sltypes.Linkbar
	Link           = sltypes.Link
	CodeLine       = sltypes.CodeLine
	Mention        = sltypes.Mention
	Text           = sltypes.Text
	Leaf           = sltypes.Leaf
	Mark           = sltypes.Mark
)

// Реэкспорт констант
const (
	BulletedList = sltypes.BulletedList
	OrderedList  = sltypes.OrderedList
	TodoList     = sltypes.TodoList

	NoAlign     = sltypes.NoAlign
	LeftAlign   = sltypes.LeftAlign
	CenterAlign = sltypes.CenterAlign
	RightAlign  = sltypes.RightAlign

	MarkBold     = sltypes.MarkBold
	MarkItalic   = sltypes.MarkItalic
	MarkCode     = sltypes.MarkCode
	MarkInserted = sltypes.MarkInserted
	MarkDeleted  = sltypes.MarkDeleted
)

// Реэкспорт функций преобразования
var (
	Serialize   = markdown.Serialize
	Deserialize = markdown.Deserialize
)
