package shortcut

// Shortcut is a permanent topic affordance rendered at the widget input area.
// Activating one submits its label as a plain user utterance.
type Shortcut struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Seed provides the three fixed topic shortcuts shown under the input box.
func Seed() []Shortcut {
	return []Shortcut{
		{ID: "admission-process", Label: "Admission Process"},
		{ID: "fee-structure", Label: "Fee Structure"},
		{ID: "course-details", Label: "Course Details"},
	}
}
