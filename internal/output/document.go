package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"todoexport/internal/service"
)

// userEntry is a record in the single-user document.
type userEntry struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
	Username  string  `json:"username"`
}

// allEntry is a record in the all-employees document.
type allEntry struct {
	Username  string  `json:"username"`
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

// MarshalUserReport renders {"<id>": [{"task","completed","username"}...]} on one line.
func MarshalUserReport(r service.TaskReport) ([]byte, error) {
	entries := make([]userEntry, 0, len(r.Records))
	for _, rec := range r.Records {
		entries = append(entries, userEntry{Task: rec.Title, Completed: rec.Completed, Username: rec.Username})
	}

	data, err := marshal(map[string][]userEntry{r.UserID.String(): entries})
	if err != nil {
		return nil, fmt.Errorf("marshal report for user %s: %w", r.UserID, err)
	}
	return append(data, '\n'), nil
}

// MarshalAllReports renders {"<id>": [{"username","task","completed"}...], ...}
// indented by four spaces. Keys keep the order of reports.
func MarshalAllReports(reports []service.TaskReport) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, r := range reports {
		if i > 0 {
			compact.WriteByte(',')
		}
		entries := make([]allEntry, 0, len(r.Records))
		for _, rec := range r.Records {
			entries = append(entries, allEntry{Username: rec.Username, Task: rec.Title, Completed: rec.Completed})
		}
		value, err := marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("marshal report for user %s: %w", r.UserID, err)
		}
		compact.WriteString(strconv.Quote(r.UserID.String()))
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping, so titles stay readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeReports parses an export document in either layout.
// Reports come back in file order; Username is taken from the first record.
func DecodeReports(r io.Reader) ([]service.TaskReport, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode export: expected object, got %v", tok)
	}

	var reports []service.TaskReport
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode export: %w", err)
		}
		key, _ := tok.(string)
		id, err := service.ParseUserID(key)
		if err != nil {
			return nil, fmt.Errorf("decode export: %w", err)
		}

		var entries []userEntry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("decode export: user %s: %w", key, err)
		}

		report := service.TaskReport{UserID: id, Records: make([]service.TaskRecord, 0, len(entries))}
		for _, e := range entries {
			report.Records = append(report.Records, service.TaskRecord{
				Title:     e.Task,
				Completed: e.Completed,
				Username:  e.Username,
			})
		}
		if len(entries) > 0 {
			report.Username = entries[0].Username
		}
		reports = append(reports, report)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return reports, nil
}
