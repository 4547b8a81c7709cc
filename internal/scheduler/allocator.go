package scheduler

import "github.com/prepsheet/prepsheet/internal/models"

// PickSubject selects the subject for one study slot. The choice is fully
// deterministic: a rotation index derived from the day number and slot
// position cycles through whichever subject list the slot prefers.
//
// Slot preferences:
//   - slots 0 and 1 (the morning double) prefer focus subjects
//   - slot 2 prefers the remaining subjects
//   - slot 3 alternates between the two on the parity of the rotation counter
//
// A preferred list that is empty falls back to its complement, then to the
// full catalog. Returns nil only when the catalog itself is empty; the caller
// renders a generic revision label in that case.
//
// The counter advances by exactly one per call regardless of outcome, so the
// rotation sequence depends only on the call sequence. The advanced counter is
// returned rather than mutated through a shared reference.
func PickSubject(focus, other, catalog []models.Subject, dayIndex, slotInDay, counter int) (*models.Subject, int) {
	next := counter + 1
	rotation := (dayIndex-1)*studySlotsPerDay + slotInDay

	var primary, secondary []models.Subject
	switch slotInDay {
	case 0, 1:
		primary, secondary = focus, other
	case 2:
		primary, secondary = other, focus
	default:
		if counter%2 == 0 {
			primary, secondary = focus, other
		} else {
			primary, secondary = other, focus
		}
	}

	if s := subjectAt(primary, rotation); s != nil {
		return s, next
	}
	if s := subjectAt(secondary, rotation); s != nil {
		return s, next
	}
	return subjectAt(catalog, rotation), next
}

func subjectAt(list []models.Subject, rotation int) *models.Subject {
	if len(list) == 0 {
		return nil
	}
	s := list[rotation%len(list)]
	return &s
}
