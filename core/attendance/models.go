package attendance

import (
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/tnhappykids/appcore/core"
)

// Statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Marking methods
const (
	MethodManual = "manual"
	MethodQR     = "qr"
)

// Record mirrors a row from get_attendance_v2.php. Identity is
// (student_id, date): marking again for the same pair replaces the record.
type Record struct {
	StudentID  string      `json:"student_id" validate:"required"`
	Date       string      `json:"date" validate:"required"`
	Status     string      `json:"status" validate:"required,oneof=present absent"`
	InTime     null.String `json:"in_time,omitempty"`
	OutTime    null.String `json:"out_time,omitempty"`
	Method     string      `json:"method" validate:"required,oneof=manual qr"`
	GuardianID null.String `json:"guardian_id,omitempty"`
	SendOff    bool        `json:"send_off"`
}

func (r *Record) Validate() error {
	r.StudentID = core.CleanString(r.StudentID)
	r.Date = core.CleanString(r.Date)
	r.Status = core.CleanString(r.Status, true /* lower */)
	r.Method = core.CleanString(r.Method, true /* lower */)
	return core.TranslateError(core.Validate.Struct(r))
}

// Key is the upsert identity of a Record.
type Key struct {
	StudentID string
	Date      string
}

func (r Record) Key() Key { return Key{StudentID: r.StudentID, Date: r.Date} }

// Upsert replaces the record matching rec's (student_id, date) in records,
// or appends it. Order of untouched records is preserved.
func Upsert(records []Record, rec Record) []Record {
	for i, r := range records {
		if r.Key() == rec.Key() {
			out := make([]Record, len(records))
			copy(out, records)
			out[i] = rec
			return out
		}
	}
	return append(append([]Record{}, records...), rec)
}

// GroupByDate buckets records per date; Dates returns the keys sorted
// descending (most recent first), the order attendance screens render.
func GroupByDate(records []Record) map[string][]Record {
	grouped := make(map[string][]Record)
	for _, r := range records {
		grouped[r.Date] = append(grouped[r.Date], r)
	}
	return grouped
}

func Dates(grouped map[string][]Record) []string {
	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
