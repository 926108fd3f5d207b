package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"funknotes/internal/adapters/filesystem"
	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"
)

type projectRecord struct {
	Name    string         `json:"name"`
	Index   *int           `json:"index"`
	Objects []objectRecord `json:"objects"`
}

type objectRecord struct {
	Name    string          `json:"name"`
	Items   []itemRecord    `json:"items"`
	History []historyRecord `json:"history"`
}

type itemRecord struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type historyRecord struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// JSON stores a project as a single indented JSON document
type JSON struct{}

// Ensure JSON implements ports.ProjectCodec
var _ ports.ProjectCodec = JSON{}

// Extension returns ".json"
func (JSON) Extension() string { return ".json" }

// Format returns "json"
func (JSON) Format() string { return FormatJSON }

// Load reads and validates a project file
func (JSON) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &application.NotFoundError{Kind: "project file", Name: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rec projectRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &application.CorruptError{Path: path, Reason: err.Error()}
	}
	if rec.Index == nil {
		return nil, &application.CorruptError{Path: path, Reason: "missing project index"}
	}

	p := domain.NewProject(rec.Name, *rec.Index)
	for _, or := range rec.Objects {
		obj, err := p.AddObject(or.Name)
		if err != nil {
			return nil, &application.CorruptError{Path: path, Reason: fmt.Sprintf("duplicate object '%s'", or.Name)}
		}
		for _, ir := range or.Items {
			obj.Items = append(obj.Items, domain.Item{Timestamp: ir.Timestamp, Text: ir.Text})
		}
		for _, hr := range or.History {
			action := domain.Action(hr.Action)
			if !action.Valid() {
				return nil, &application.CorruptError{Path: path, Reason: fmt.Sprintf("unknown history action %q", hr.Action)}
			}
			obj.History = append(obj.History, domain.HistoryEntry{Action: action, Timestamp: hr.Timestamp, Text: hr.Text})
		}
	}
	return p, nil
}

// Save replaces the file with the encoded project
func (JSON) Save(path string, p *domain.Project) error {
	index := p.Index
	rec := projectRecord{
		Name:    p.Name,
		Index:   &index,
		Objects: make([]objectRecord, 0, len(p.Objects)),
	}
	for _, obj := range p.Objects {
		or := objectRecord{
			Name:    obj.Name,
			Items:   make([]itemRecord, 0, len(obj.Items)),
			History: make([]historyRecord, 0, len(obj.History)),
		}
		for _, it := range obj.Items {
			or.Items = append(or.Items, itemRecord{Timestamp: it.Timestamp, Text: it.Text})
		}
		for _, h := range obj.History {
			or.History = append(or.History, historyRecord{Action: string(h.Action), Timestamp: h.Timestamp, Text: h.Text})
		}
		rec.Objects = append(rec.Objects, or)
	}

	return filesystem.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode project: %w", err)
		}
		return nil
	})
}
