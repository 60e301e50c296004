// Package transfer encodes and decodes the task collection for import and export.
package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/nearby/internal/domain"
)

// Format is an export encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV, FormatPDF}
}

// ParseFormat parses a format name. "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
	}
}

// csvHeader lists the CSV columns in output order.
var csvHeader = []string{"index", "name", "description", "dueDate", "priority", "location"}

// Encode renders tasks in the given format. now stamps the PDF report header.
func Encode(tasks []domain.Task, format Format, now time.Time) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatCSV:
		return encodeCSV(tasks)
	case FormatPDF:
		return encodePDF(tasks, now)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

func encodeCSV(tasks []domain.Task) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write(csvHeader)
	for i, t := range tasks {
		_ = w.Write([]string{
			fmt.Sprint(i),
			t.Name,
			t.Description,
			t.DueDate,
			string(t.Priority),
			string(t.Location),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodePDF(tasks []domain.Task, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, fmt.Sprintf("Generated %s, %d tasks", now.Format("2006-01-02 15:04"), len(tasks)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s [%s @ %s] due %s", i, t.Name, t.Priority, t.Location, t.DueDate)
		if t.Description != "" {
			line += "\n    " + t.Description
		}
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// document is the mapping form accepted by Decode.
type document struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// Decode parses tasks from YAML or JSON. The input may be a sequence of
// tasks or a mapping with a "tasks" key. Empty input yields no tasks.
func Decode(data []byte) ([]domain.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Task{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if len(node.Content) == 0 {
		return []domain.Task{}, nil
	}

	root := node.Content[0]
	var tasks []domain.Task
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("parse tasks: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse tasks: %w", err)
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("parse tasks: expected a list of tasks, got %s", root.Tag)
	}

	return domain.CloneTasks(tasks), nil
}

// Ensure Codec implements domain.TaskCodec.
var _ domain.TaskCodec = Codec{}

// Codec adapts Encode and Decode to domain.TaskCodec.
type Codec struct{}

// Encode implements domain.TaskCodec.
func (Codec) Encode(tasks []domain.Task, format string, now time.Time) ([]byte, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return Encode(tasks, f, now)
}

// Decode implements domain.TaskCodec.
func (Codec) Decode(data []byte) ([]domain.Task, error) {
	return Decode(data)
}
