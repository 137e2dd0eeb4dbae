package markdown

import (
	"testing"

	"github.com/aisa-it/slatemd/sltypes"
)

func TestDeserialize(t *testing.T) {
	source := `# Title

Hello **bold** and *it*.

* a
* b

> quoted

| h1 | h2 |
|:--- | ---:|
| a | b |
`

	doc, err := Deserialize(source)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(doc.Nodes) != 5 {
		t.Fatalf("got %d nodes, want 5", len(doc.Nodes))
	}

	heading, ok := doc.Nodes[0].(*sltypes.Heading)
	if !ok || heading.Level != 1 {
		t.Fatalf("node 0 = %#v, want heading level 1", doc.Nodes[0])
	}
	if got := leafText(t, heading.Content[0]); got != "Title" {
		t.Errorf("heading text = %q, want %q", got, "Title")
	}

	para, ok := doc.Nodes[1].(*sltypes.Paragraph)
	if !ok {
		t.Fatalf("node 1 = %#v, want paragraph", doc.Nodes[1])
	}
	if len(para.Content) != 5 {
		t.Fatalf("paragraph has %d children, want 5", len(para.Content))
	}
	bold := para.Content[1].(*sltypes.Text).Leaves[0]
	if bold.Text != "bold" || len(bold.Marks) != 1 || bold.Marks[0] != sltypes.MarkBold {
		t.Errorf("bold leaf = %#v", bold)
	}
	italic := para.Content[3].(*sltypes.Text).Leaves[0]
	if italic.Text != "it" || len(italic.Marks) != 1 || italic.Marks[0] != sltypes.MarkItalic {
		t.Errorf("italic leaf = %#v", italic)
	}

	list, ok := doc.Nodes[2].(*sltypes.List)
	if !ok || list.Kind != sltypes.BulletedList {
		t.Fatalf("node 2 = %#v, want bulleted list", doc.Nodes[2])
	}
	if len(list.Items) != 2 {
		t.Fatalf("list has %d items, want 2", len(list.Items))
	}
	itemPara, ok := list.Items[0].Content[0].(*sltypes.Paragraph)
	if !ok {
		t.Fatalf("list item content = %#v, want paragraph", list.Items[0].Content[0])
	}
	if got := leafText(t, itemPara.Content[0]); got != "a" {
		t.Errorf("list item text = %q, want %q", got, "a")
	}

	quote, ok := doc.Nodes[3].(*sltypes.BlockQuote)
	if !ok {
		t.Fatalf("node 3 = %#v, want block quote", doc.Nodes[3])
	}
	if _, ok := quote.Content[0].(*sltypes.Paragraph); !ok {
		t.Errorf("quote content = %#v, want paragraph", quote.Content[0])
	}

	table, ok := doc.Nodes[4].(*sltypes.Table)
	if !ok {
		t.Fatalf("node 4 = %#v, want table", doc.Nodes[4])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(table.Rows))
	}
	head := table.Rows[0]
	if !head[0].Header || head[0].Align != sltypes.LeftAlign {
		t.Errorf("header cell 0 = %#v, want left-aligned header", head[0])
	}
	if !head[1].Header || head[1].Align != sltypes.RightAlign {
		t.Errorf("header cell 1 = %#v, want right-aligned header", head[1])
	}
	if table.Rows[1][0].Header {
		t.Errorf("body cell marked as header: %#v", table.Rows[1][0])
	}
}

func TestDeserializeTaskList(t *testing.T) {
	doc, err := Deserialize("- [x] done\n- [ ] later\n")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	list, ok := doc.Nodes[0].(*sltypes.List)
	if !ok || list.Kind != sltypes.TodoList {
		t.Fatalf("node 0 = %#v, want todo list", doc.Nodes[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("list has %d items, want 2", len(list.Items))
	}
	if !list.Items[0].Checked || list.Items[1].Checked {
		t.Errorf("checked flags = %v, %v, want true, false",
			list.Items[0].Checked, list.Items[1].Checked)
	}
}

func TestDeserializeInlines(t *testing.T) {
	doc, err := Deserialize("run `go doc`, see [docs](https://example.com/a%20b) and ~~old~~\n")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	para := doc.Nodes[0].(*sltypes.Paragraph)

	// Код присоединяется к текущему текстовому узлу отдельным фрагментом
	code := para.Content[0].(*sltypes.Text).Leaves[1]
	if code.Text != "go doc" || len(code.Marks) != 1 || code.Marks[0] != sltypes.MarkCode {
		t.Errorf("code leaf = %#v", code)
	}

	var link *sltypes.Link
	for _, child := range para.Content {
		if l, ok := child.(*sltypes.Link); ok {
			link = l
		}
	}
	if link == nil || link.Href != "https://example.com/a%20b" {
		t.Fatalf("link = %#v, want href %q", link, "https://example.com/a%20b")
	}
	if got := leafText(t, link.Content[0]); got != "docs" {
		t.Errorf("link text = %q, want %q", got, "docs")
	}

	deleted := para.Content[len(para.Content)-1].(*sltypes.Text).Leaves[0]
	if deleted.Text != "old" || len(deleted.Marks) != 1 || deleted.Marks[0] != sltypes.MarkDeleted {
		t.Errorf("deleted leaf = %#v", deleted)
	}
}

func TestDeserializeNestedEmphasisMarkOrder(t *testing.T) {
	doc, err := Deserialize("***text***\n")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	leaf := doc.Nodes[0].(*sltypes.Paragraph).Content[0].(*sltypes.Text).Leaves[0]
	if leaf.Text != "text" {
		t.Fatalf("leaf text = %q, want %q", leaf.Text, "text")
	}
	// Внутренний mark идет первым
	want := []sltypes.Mark{sltypes.MarkBold, sltypes.MarkItalic}
	if len(leaf.Marks) != 2 || leaf.Marks[0] != want[0] || leaf.Marks[1] != want[1] {
		t.Errorf("marks = %v, want %v", leaf.Marks, want)
	}
}

func TestDeserializeUnescape(t *testing.T) {
	doc, err := Deserialize(`adr\@host and 100\% \[ok\]` + "\n")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if got := leafText(t, doc.Nodes[0].(*sltypes.Paragraph).Content[0]); got != "adr@host and 100% [ok]" {
		t.Errorf("text = %q, want %q", got, "adr@host and 100% [ok]")
	}
}

func TestDeserializeImageParagraph(t *testing.T) {
	doc, err := Deserialize("![pic](/img/x.png)\n")
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	img, ok := doc.Nodes[0].(*sltypes.Image)
	if !ok {
		t.Fatalf("node 0 = %#v, want image block", doc.Nodes[0])
	}
	if img.Src != "/img/x.png" || img.Alt != "pic" {
		t.Errorf("image = %#v", img)
	}
}

// TestRoundTrip проверяет, что канонический Markdown переживает цикл
// разбор-сериализация без изменений.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"hello\n",
		"# Title\n\nHello **bold**\n",
		"***text***\n",
		"~~gone~~\n",
		"`x`\n",
		"* a\n* b\n",
		"1. a\n1. b\n",
		"---\n",
		"```\ncode\n```\n",
		"![pic](/img/x.png)\n",
		"| h1 | h2 |\n|:--- | ---:|\n| a | b |\n",
	}

	for _, source := range sources {
		doc, err := Deserialize(source)
		if err != nil {
			t.Fatalf("Deserialize(%q) failed: %v", source, err)
		}
		got, err := Serialize(doc)
		if err != nil {
			t.Fatalf("Serialize(%q) failed: %v", source, err)
		}
		if got != source {
			t.Errorf("round trip of %q = %q", source, got)
		}
	}
}

// leafText возвращает текст первого фрагмента текстового узла.
func leafText(t *testing.T, node any) string {
	t.Helper()
	text, ok := node.(*sltypes.Text)
	if !ok {
		t.Fatalf("node %#v is not a text node", node)
	}
	if len(text.Leaves) == 0 {
		t.Fatalf("text node has no leaves")
	}
	return text.Leaves[0].Text
}
