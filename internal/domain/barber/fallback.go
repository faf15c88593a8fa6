package barber

import "github.com/BruksfildServices01/barber-desk/internal/store"

// ===============================
// Dual-schema reconciliation
// ===============================
//
// Barber documents have been written under two generations of field names.
// Each semantic value resolves through an ordered list of source fields so
// the precedence rule lives in one place instead of ad hoc fallback chains.

// fieldFallback resolves a string value across schema generations: the first
// source field holding a non-empty string wins, otherwise the default.
type fieldFallback struct {
	sources []string
	def     string
}

func (fb fieldFallback) resolve(fields store.Fields) string {
	for _, key := range fb.sources {
		if v := fields.String(key); v != "" {
			return v
		}
	}
	return fb.def
}

var (
	workStartField = fieldFallback{sources: []string{"startHour", "startDate"}, def: "09:00"}
	workEndField   = fieldFallback{sources: []string{"endHour", "endDate"}, def: "18:00"}
)

// resolveActive infers the active flag across both schemas. The polarity
// differs by generation, so this is NOT a first-non-nil chain:
//
//   - an explicit isActive (including false) wins outright;
//   - otherwise the record is active unless the legacy status field is
//     explicitly false;
//   - a document with neither field is active.
func resolveActive(fields store.Fields) bool {
	if v, ok := fields.Bool("isActive"); ok {
		return v
	}
	if v, ok := fields.Bool("status"); ok {
		return v
	}
	return true
}
