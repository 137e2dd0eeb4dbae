package sltypes_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Регистрирует парсер и сериализатор Slate JSON для Document.
	_ "github.com/aisa-it/slatemd/sljson"

	"github.com/aisa-it/slatemd/sltypes"
)

const paragraphJSON = `{"document":{"object":"document","nodes":[
	{"object":"block","type":"paragraph","nodes":[
		{"object":"text","leaves":[{"object":"leaf","text":"Hello"}]}
	]}
]}}`

func TestDocumentUnmarshalJSON(t *testing.T) {
	var doc sltypes.Document
	if err := json.Unmarshal([]byte(paragraphJSON), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(doc.Nodes))
	}
	para, ok := doc.Nodes[0].(*sltypes.Paragraph)
	if !ok {
		t.Fatalf("node 0 = %#v, want paragraph", doc.Nodes[0])
	}
	text := para.Content[0].(*sltypes.Text)
	if text.Leaves[0].Text != "Hello" {
		t.Errorf("leaf text = %q, want %q", text.Leaves[0].Text, "Hello")
	}
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc := sltypes.Document{Nodes: []any{
		&sltypes.Paragraph{Content: []any{
			&sltypes.Text{Leaves: []sltypes.Leaf{{Text: "Hello"}}},
		}},
	}}

	data, err := json.Marshal(&doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"object":"document"`) {
		t.Errorf("marshalled JSON has no document object: %s", data)
	}

	var parsed sltypes.Document
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(parsed.Nodes) != 1 {
		t.Errorf("got %d nodes after round trip, want 1", len(parsed.Nodes))
	}
}

func TestDocumentScan(t *testing.T) {
	var doc sltypes.Document
	if err := doc.Scan([]byte(paragraphJSON)); err != nil {
		t.Fatalf("Scan of []byte failed: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1", len(doc.Nodes))
	}

	var fromString sltypes.Document
	if err := fromString.Scan(paragraphJSON); err != nil {
		t.Fatalf("Scan of string failed: %v", err)
	}
	if len(fromString.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1", len(fromString.Nodes))
	}

	var fromNil sltypes.Document
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan of nil failed: %v", err)
	}
	if fromNil.Nodes == nil || len(fromNil.Nodes) != 0 {
		t.Errorf("Scan of nil nodes = %#v, want empty slice", fromNil.Nodes)
	}

	if err := doc.Scan(42); err == nil {
		t.Error("Scan of int succeeded, want error")
	}
}

func TestDocumentValue(t *testing.T) {
	doc := sltypes.Document{Nodes: []any{&sltypes.HorizontalRule{}}}

	value, err := doc.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	data, ok := value.([]byte)
	if !ok {
		t.Fatalf("Value = %T, want []byte", value)
	}
	if !strings.Contains(string(data), "horizontal-rule") {
		t.Errorf("Value output has no horizontal-rule: %s", data)
	}
}

func TestGormDataType(t *testing.T) {
	if got := (sltypes.Document{}).GormDataType(); got != "jsonb" {
		t.Errorf("GormDataType = %q, want %q", got, "jsonb")
	}
}

func TestMarkString(t *testing.T) {
	tests := []struct {
		mark sltypes.Mark
		want string
	}{
		{sltypes.MarkBold, "bold"},
		{sltypes.MarkItalic, "italic"},
		{sltypes.MarkCode, "code"},
		{sltypes.MarkInserted, "inserted"},
		{sltypes.MarkDeleted, "deleted"},
		{sltypes.Mark(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mark.String(); got != tt.want {
			t.Errorf("Mark(%d).String() = %q, want %q", int(tt.mark), got, tt.want)
		}
	}
}
