package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const sampleHolidays = `# national holidays
01/01/1970,r
25/12/2000,r

01/05/2024,n
15/08/2024,x
not a holiday line
  06/01/2000 , r  
`

func TestParseHolidayLines(t *testing.T) {
	entries, err := ParseHolidayLines(strings.NewReader(sampleHolidays), nil)
	if err != nil {
		t.Fatalf("ParseHolidayLines() error = %v", err)
	}

	want := []RawEntry{
		{Date: "01/01/1970", Flag: "r"},
		{Date: "25/12/2000", Flag: "r"},
		{Date: "01/05/2024", Flag: "n"},
		{Date: "15/08/2024", Flag: "x"},
		{Date: "06/01/2000", Flag: "r"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("ParseHolidayLines() = %v, want %v", entries, want)
	}

	registry := NewHolidayRegistry(entries, nil)
	if registry.Len() != 4 {
		t.Errorf("Len() = %d, want 4", registry.Len())
	}
	if registry.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", registry.Skipped())
	}
	if !registry.IsHoliday(2024, time.January, 6) {
		t.Error("trimmed line 06/01/2000 was not registered")
	}
	if registry.IsHoliday(2024, time.August, 15) {
		t.Error("unknown flag x registered a holiday")
	}
}

func TestParseHolidayYAML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []RawEntry
		wantErr bool
	}{
		{
			name: "entries",
			doc:  "holidays:\n  - date: 25/12/2000\n    flag: r\n  - date: \"01/05/2024\"\n    flag: n\n",
			want: []RawEntry{
				{Date: "25/12/2000", Flag: "r"},
				{Date: "01/05/2024", Flag: "n"},
			},
		},
		{
			name: "empty document",
			doc:  "",
		},
		{
			name:    "malformed",
			doc:     "holidays: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseHolidayYAML(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHolidayYAML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(entries) != len(tt.want) || (len(tt.want) > 0 && !reflect.DeepEqual(entries, tt.want)) {
				t.Errorf("ParseHolidayYAML() = %v, want %v", entries, tt.want)
			}
		})
	}
}

func TestReadHolidayFile(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "holidays.txt")
	writeHolidays(t, txtPath, sampleHolidays)

	yamlPath := filepath.Join(dir, "holidays.yaml")
	writeHolidays(t, yamlPath, "holidays:\n  - {date: 24/12/2010, flag: r}\n")

	entries, err := ReadHolidayFile(txtPath, nil)
	if err != nil {
		t.Fatalf("ReadHolidayFile(txt) error = %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("ReadHolidayFile(txt) returned %d entries, want 5", len(entries))
	}

	entries, err = ReadHolidayFile(yamlPath, nil)
	if err != nil {
		t.Fatalf("ReadHolidayFile(yaml) error = %v", err)
	}
	want := []RawEntry{{Date: "24/12/2010", Flag: "r"}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ReadHolidayFile(yaml) = %v, want %v", entries, want)
	}

	_, err = ReadHolidayFile(filepath.Join(dir, "missing.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadHolidayFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
