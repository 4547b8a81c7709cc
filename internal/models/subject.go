package models

// Subject identifies one study subject within an exam's catalog.
// The key is a stable identifier; the label is what gets rendered.
type Subject struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ScheduleRequest is the input to plan generation.
type ScheduleRequest struct {
	ExamType         string   `json:"exam_type"`
	ExamDate         string   `json:"exam_date"` // YYYY-MM-DD format
	FocusSubjectKeys []string `json:"focus_subject_keys"`
}

// HasFocus reports whether the given subject key was marked as a focus subject.
func (r ScheduleRequest) HasFocus(key string) bool {
	for _, k := range r.FocusSubjectKeys {
		if k == key {
			return true
		}
	}
	return false
}
