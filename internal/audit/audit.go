package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/cryptr/internal/configs"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"` // Random UUID.
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // Command name, e.g. "encryptfile".

	// Optional fields depending on operation.
	Input       string   `json:"input,omitempty"`        // Envelope or plaintext read.
	KeyFile     string   `json:"key_file,omitempty"`     // Symmetric, public or private key used.
	Output      string   `json:"output,omitempty"`       // File written.
	Files       []string `json:"files,omitempty"`        // For batch commands.
	FailedCount int      `json:"failed_count,omitempty"` // For batch commands.
	KeyBits     int      `json:"key_bits,omitempty"`     // For generatekey.
	Padding     string   `json:"padding,omitempty"`      // For encryptkey/decryptkey.
}

// Log appends an entry to the configured audit log.
// Failures are swallowed: an operation never fails because auditing did.
func Log(entry Entry) {
	logPath := LogPath()
	if logPath == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file.
// Returns empty string if auditing is disabled.
func LogPath() string {
	return configs.Active.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if auditing is disabled or the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
