package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/cryptr/internal/configs"
)

// useAuditLog enables auditing to a temp file for the duration of the test.
func useAuditLog(t *testing.T) string {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "audit.jsonl")

	original := configs.Active
	config := configs.Default()
	config.Audit.Enabled = true
	config.Audit.Path = logPath
	configs.Active = config
	t.Cleanup(func() { configs.Active = original })

	return logPath
}

func TestLog_DisabledWritesNothing(t *testing.T) {
	original := configs.Active
	configs.Active = configs.Default()
	defer func() { configs.Active = original }()

	if LogPath() != "" {
		t.Fatalf("Expected empty log path when disabled, got %q", LogPath())
	}

	// Must not panic or create anything.
	Log(Entry{Operation: "generatekey"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestLog_CreatesFile(t *testing.T) {
	logPath := useAuditLog(t)

	Log(Entry{Operation: "encryptfile", Input: "report.pdf", Output: "report.pdf.enc"})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := useAuditLog(t)

	Log(Entry{Operation: "generatekey", Output: "secret.key", KeyBits: 128})
	Log(Entry{Operation: "encryptkey", Input: "secret.key", KeyFile: "pub.der", Output: "secret.key.wrapped", Padding: "pkcs1v15"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	var first Entry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Failed to parse first entry: %v", err)
	}
	if first.Operation != "generatekey" || first.KeyBits != 128 {
		t.Errorf("Unexpected first entry: %+v", first)
	}
	if first.ID == "" || first.Timestamp == "" {
		t.Errorf("Expected ID and timestamp to be populated, got %+v", first)
	}
}

func TestLog_UniqueIDs(t *testing.T) {
	useAuditLog(t)

	for i := 0; i < 5; i++ {
		Log(Entry{Operation: "decryptfile"})
	}

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("Duplicate ID %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestLog_KeepsProvidedFields(t *testing.T) {
	useAuditLog(t)

	Log(Entry{ID: "fixed-id", Timestamp: "2024-01-15T10:30:00.000000Z", Operation: "decryptkey"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != "fixed-id" || entries[0].Timestamp != "2024-01-15T10:30:00.000000Z" {
		t.Errorf("Provided fields were overwritten: %+v", entries[0])
	}
}

func TestParseEntries_SkipsMalformed(t *testing.T) {
	data := []byte(`{"id":"1","ts":"2024-01-15T10:30:00.000000Z","op":"encryptfile"}
not json
{"id":"2","ts":"2024-01-15T10:31:00.000000Z","op":"decryptfile"}

{"id":"3","ts":"2024-01-15T10:32:00.000000Z","op":"generatekey"}`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[2].Operation != "generatekey" {
		t.Errorf("Expected last entry without trailing newline to parse, got %+v", entries[2])
	}
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil, got %v", entries)
	}
}
