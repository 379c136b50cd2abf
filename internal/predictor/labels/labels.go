// Package labels implements the class-label store: a once-loaded,
// immutable, ordered table of class-id -> (name, color) read from a
// CSV file at startup.
package labels

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	yolov1 "yolofeed/api/yolo/v1"
)

// Load reads path, one "label,red,green,blue" line per class, trimming
// whitespace around each field. Any parse failure aborts with a
// descriptive error; order of lines defines class id.
func Load(path string) ([]*yolov1.ColorLabel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels file %s: %w", path, err)
	}
	defer f.Close()

	var labels []*yolov1.ColorLabel
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("labels file %s line %d: expected 4 fields, got %d", path, lineNo, len(fields))
		}

		red, err := parseChannel(fields[1])
		if err != nil {
			return nil, fmt.Errorf("labels file %s line %d: red: %w", path, lineNo, err)
		}
		green, err := parseChannel(fields[2])
		if err != nil {
			return nil, fmt.Errorf("labels file %s line %d: green: %w", path, lineNo, err)
		}
		blue, err := parseChannel(fields[3])
		if err != nil {
			return nil, fmt.Errorf("labels file %s line %d: blue: %w", path, lineNo, err)
		}

		labels = append(labels, &yolov1.ColorLabel{
			Label: strings.TrimSpace(fields[0]),
			Red:   red,
			Green: green,
			Blue:  blue,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels file %s: %w", path, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels file %s: no labels loaded", path)
	}
	return labels, nil
}

func parseChannel(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Store serves the loaded, immutable label table over RPC.
type Store struct {
	labels []*yolov1.ColorLabel
}

func NewStore(path string) (*Store, error) {
	labels, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{labels: labels}, nil
}

func (s *Store) All() []*yolov1.ColorLabel {
	return s.labels
}
