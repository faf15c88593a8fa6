package appointment

import (
	"sort"

	"github.com/BruksfildServices01/barber-desk/internal/models"
)

// SortForDisplay orders appointments newest-first: date descending, then
// time descending. Both keys are zero-padded strings, so plain string
// comparison is chronological. No tie-break beyond the two keys.
//
// Sorting happens in memory to avoid requiring a compound server-side index
// on (barberId, date, time).
func SortForDisplay(list []models.Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date > list[j].Date
		}
		return list[i].Time > list[j].Time
	})
}
