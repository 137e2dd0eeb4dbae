// Утилита конвертации документов редактора между форматами.
// Читает Slate JSON, HTML или Markdown и выводит Markdown или Slate JSON.
//
// Основные возможности:
//   - Чтение исходного документа из файла или stdin.
//   - Выбор входного формата флагом -from (json, html, markdown).
//   - Запись результата в файл или stdout в формате -to (markdown, json).
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aisa-it/slatemd"
	"github.com/aisa-it/slatemd/markdown"
	"github.com/aisa-it/slatemd/sljson"
	"github.com/aisa-it/slatemd/sltypes"
)

func main() {
	in := flag.String("in", "", "Path of input file (default stdin)")
	out := flag.String("out", "", "Path of output file (default stdout)")
	from := flag.String("from", "json", "Input format: json, html or markdown")
	to := flag.String("to", "markdown", "Output format: markdown or json")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			slog.Error("Open input", "path", *in, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	doc, err := readDocument(r, *from)
	if err != nil {
		slog.Error("Parse input", "format", *from, "err", err)
		os.Exit(1)
	}

	result, err := writeDocument(doc, *to)
	if err != nil {
		slog.Error("Serialize output", "format", *to, "err", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("Create output", "path", *out, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(result); err != nil {
		slog.Error("Write output", "err", err)
		os.Exit(1)
	}
}

// readDocument разбирает входной документ в дерево sltypes.
func readDocument(r io.Reader, format string) (*sltypes.Document, error) {
	switch format {
	case "json":
		return sljson.ParseJSON(r)
	case "html":
		return slatemd.ParseHTML(r)
	case "markdown", "md":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return markdown.Deserialize(string(data))
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// writeDocument сериализует дерево документа в выходной формат.
func writeDocument(doc *sltypes.Document, format string) ([]byte, error) {
	switch format {
	case "markdown", "md":
		text, err := markdown.Serialize(doc)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case "json":
		return sljson.Serialize(doc)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
