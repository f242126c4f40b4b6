package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// DefaultExportFileName is the file name suggested for audit log downloads
const DefaultExportFileName = "audit_logs.csv"

// ExportOptions controls the audit log CSV layout
type ExportOptions struct {
	// EscapeFields quotes fields the way encoding/csv does: fields containing
	// a comma, quote or line break, fields starting with whitespace, and a
	// field that is exactly `\.`. When false the fields are joined verbatim,
	// which corrupts the row if any field contains a comma, quote or line break.
	EscapeFields bool
}

// ExportAuditLog renders entries as CSV: one line per entry, fields in the
// order timestamp,user,action,resource,status,details, no header row and no
// trailing newline. The output depends only on entries and opts.
func ExportAuditLog(entries []AuditLogEntry, opts ExportOptions) ([]byte, error) {
	if !opts.EscapeFields {
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, strings.Join(e.Record(), ","))
		}
		return []byte(strings.Join(lines, "\n")), nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i, e := range entries {
		if err := w.Write(e.Record()); err != nil {
			return nil, fmt.Errorf("failed to encode audit log entry %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode audit log: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
