package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// holidayDocument is the YAML layout of a holiday file
type holidayDocument struct {
	Holidays []RawEntry `yaml:"holidays"`
}

// ReadHolidayFile reads raw holiday entries from path. Files ending in
// .yaml or .yml are decoded as YAML, anything else as "dd/mm/yyyy,flag" lines.
func ReadHolidayFile(path string, logger *zap.Logger) ([]RawEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	var entries []RawEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = ParseHolidayYAML(file)
	default:
		entries, err = ParseHolidayLines(file, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Holiday file read",
		zap.String("file", path),
		zap.Int("entries", len(entries)))

	return entries, nil
}

// ParseHolidayLines parses the line format, one "dd/mm/yyyy,flag" per line.
// Blank lines and # comments are skipped; lines without exactly two
// comma-separated fields are dropped.
func ParseHolidayLines(r io.Reader, logger *zap.Logger) ([]RawEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var entries []RawEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			logger.Warn("Invalid line format",
				zap.Int("line_no", lineNo),
				zap.String("line", line))
			continue
		}

		entries = append(entries, RawEntry{
			Date: strings.TrimSpace(parts[0]),
			Flag: strings.TrimSpace(parts[1]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	return entries, nil
}

// ParseHolidayYAML decodes a document of the form
//
//	holidays:
//	  - date: 25/12/2000
//	    flag: r
func ParseHolidayYAML(r io.Reader) ([]RawEntry, error) {
	var doc holidayDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse holiday yaml: %w", err)
	}
	return doc.Holidays, nil
}
