package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"funknotes/internal/adapters/filesystem"
	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"
)

const (
	sectionPrefix = "[object "
	maxLineSize   = 1 << 20
)

// Text stores a project in the sectioned key=value format:
//
//	name=work
//	index=3
//
//	[object todo]
//	item=2024-05-01 10:00:00|buy milk
//	history=2024-05-01 10:00:00|ADD|buy milk
type Text struct{}

// Ensure Text implements ports.ProjectCodec
var _ ports.ProjectCodec = Text{}

// Extension returns ".txt"
func (Text) Extension() string { return ".txt" }

// Format returns "text"
func (Text) Format() string { return FormatText }

// Load parses a project file. Unknown keys are ignored.
func (Text) Load(path string) (*domain.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &application.NotFoundError{Kind: "project file", Name: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p, err := decodeText(f)
	if err != nil {
		var pe *parseError
		if errors.As(err, &pe) {
			return nil, &application.CorruptError{Path: path, Line: pe.line, Reason: pe.reason}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p, nil
}

// Save replaces the file with the encoded project
func (Text) Save(path string, p *domain.Project) error {
	return filesystem.WriteFileAtomic(path, func(w io.Writer) error {
		return encodeText(w, p)
	})
}

type parseError struct {
	line   int
	reason string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.reason)
}

func decodeText(r io.Reader) (*domain.Project, error) {
	p := &domain.Project{}
	var (
		current  *domain.Object
		sawIndex bool
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, ok := parseSection(line)
			if !ok {
				return nil, &parseError{lineNo, fmt.Sprintf("malformed section header %q", line)}
			}
			obj, err := p.AddObject(name)
			if err != nil {
				return nil, &parseError{lineNo, fmt.Sprintf("duplicate object '%s'", name)}
			}
			current = obj
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimLeft(key, " \t")

		switch key {
		case "name":
			p.Name = unescape(value)
		case "index":
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, &parseError{lineNo, fmt.Sprintf("invalid index %q", value)}
			}
			p.Index = n
			sawIndex = true
		case "item":
			if current == nil {
				return nil, &parseError{lineNo, "item outside an object section"}
			}
			stamp, text, ok := strings.Cut(value, "|")
			if !ok {
				return nil, &parseError{lineNo, "item is missing '|' separator"}
			}
			current.Items = append(current.Items, domain.Item{Timestamp: stamp, Text: unescape(text)})
		case "history":
			if current == nil {
				return nil, &parseError{lineNo, "history outside an object section"}
			}
			stamp, rest, ok := strings.Cut(value, "|")
			if !ok {
				return nil, &parseError{lineNo, "history is missing '|' separator"}
			}
			action, text, ok := strings.Cut(rest, "|")
			if !ok {
				return nil, &parseError{lineNo, "history is missing '|' separator"}
			}
			if !domain.Action(action).Valid() {
				return nil, &parseError{lineNo, fmt.Sprintf("unknown history action %q", action)}
			}
			current.History = append(current.History, domain.HistoryEntry{
				Action:    domain.Action(action),
				Timestamp: stamp,
				Text:      unescape(text),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawIndex {
		return nil, &parseError{lineNo, "missing index header"}
	}
	return p, nil
}

func parseSection(line string) (string, bool) {
	if !strings.HasPrefix(line, sectionPrefix) {
		return "", false
	}
	rest := line[len(sectionPrefix):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func encodeText(w io.Writer, p *domain.Project) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "name=%s\n", escape(p.Name))
	fmt.Fprintf(bw, "index=%d\n", p.Index)
	bw.WriteString("\n")

	for _, obj := range p.Objects {
		fmt.Fprintf(bw, "%s%s]\n", sectionPrefix, obj.Name)
		for _, it := range obj.Items {
			fmt.Fprintf(bw, "item=%s|%s\n", it.Timestamp, escape(it.Text))
		}
		for _, h := range obj.History {
			fmt.Fprintf(bw, "history=%s|%s|%s\n", h.Timestamp, h.Action, escape(h.Text))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

func escape(s string) string   { return escaper.Replace(s) }
func unescape(s string) string { return unescaper.Replace(s) }
