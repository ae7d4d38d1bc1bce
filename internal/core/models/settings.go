package models

// Settings are the user's display preferences. They shape rendering only;
// conflict detection ignores them.
type Settings struct {
	Theme              string   `json:"theme"`
	AccentColor        string   `json:"accentColor"`
	ShowWeekends       bool     `json:"showWeekends"`
	MinTime            string   `json:"minTime"`
	MaxTime            string   `json:"maxTime"`
	HideClosedSections bool     `json:"hideClosedSections"`
	HiddenCourseCodes  []string `json:"hiddenCourseCodes"`
}

// HideCourse adds code to the hidden list, reporting whether it was newly
// hidden.
func (s *Settings) HideCourse(code string) bool {
	for _, c := range s.HiddenCourseCodes {
		if c == code {
			return false
		}
	}
	s.HiddenCourseCodes = append(s.HiddenCourseCodes, code)
	return true
}

// UnhideCourse removes code from the hidden list, reporting whether it was
// there.
func (s *Settings) UnhideCourse(code string) bool {
	for i, c := range s.HiddenCourseCodes {
		if c == code {
			s.HiddenCourseCodes = append(s.HiddenCourseCodes[:i], s.HiddenCourseCodes[i+1:]...)
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings used before the user changes
// anything, and after corrupt persisted settings are discarded.
func DefaultSettings() Settings {
	return Settings{
		Theme:        "dark",
		AccentColor:  "#8b5cf6",
		ShowWeekends: false,
		MinTime:      "08:00:00",
		MaxTime:      "22:00:00",
	}
}
