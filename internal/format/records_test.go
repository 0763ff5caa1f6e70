package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcliao/inkind/internal/model"
)

func sampleRecords() []model.Contribution {
	return []model.Contribution{
		{
			Engagement:       "APEC-DT-01",
			Speaker:          "Jane Smith",
			Firm:             "Acme Corp",
			Economy:          "Peru",
			Category:         model.CategoryExecutive,
			Amount:           decimal.RequireFromString("1427.25"),
			ContributionDate: time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
			FiscalYear:       2026,
			ResourceType:     model.ResourceTypeInKind,
			Version:          1,
		},
		{
			Engagement:       "APEC-DT-02",
			Speaker:          "Jane Smith",
			Firm:             "Acme Corp",
			Economy:          "Peru",
			Category:         model.CategoryExecutive,
			Amount:           decimal.RequireFromString("1427.25"),
			ContributionDate: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
			FiscalYear:       2026,
			ResourceType:     model.ResourceTypeInKind,
			Version:          2,
		},
	}
}

func TestWriteRecordsPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords(), true, "plain"); err != nil {
		t.Fatalf("WriteRecords plain returned error: %v", err)
	}

	expected := strings.Join([]string{
		"contribution_date\tfiscal_year\tengagement\tspeaker\tfirm\teconomy\tcategory\tamount\tresource_type\tversion",
		"2025-11-05\t2026\tAPEC-DT-01\tJane Smith\tAcme Corp\tPeru\tExecutive / Senior Leadership\t1427.25\tIn-kind\t1",
		"2025-11-06\t2026\tAPEC-DT-02\tJane Smith\tAcme Corp\tPeru\tExecutive / Senior Leadership\t1427.25\tIn-kind\t2",
	}, "\n") + "\n"

	if got := buf.String(); got != expected {
		t.Fatalf("plain output mismatch:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestWriteRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords(), true, "table"); err != nil {
		t.Fatalf("WriteRecords table returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ENGAGEMENT") || !strings.Contains(out, "AMOUNT") {
		t.Fatalf("table header missing expected columns:\n%s", out)
	}
	if !strings.Contains(out, "$1,427.25") {
		t.Fatalf("expected grouped amount in table:\n%s", out)
	}
	if !strings.Contains(out, "$2,854.50") {
		t.Fatalf("expected total footer:\n%s", out)
	}
}

func TestWriteRecordsEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, nil, true, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(no contributions)") {
		t.Fatalf("expected placeholder row:\n%s", buf.String())
	}
}

func TestWriteRecordsInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords(), true, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriteRecordsJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, sampleRecords(), false, "jsonl"); err != nil {
		t.Fatalf("WriteRecords jsonl returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first model.Contribution
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("failed to decode first line: %v", err)
	}
	if first.Engagement != "APEC-DT-01" || !first.Amount.Equal(decimal.RequireFromString("1427.25")) {
		t.Fatalf("unexpected first record: %+v", first)
	}
}
