package permissionlist

// Texts are the static strings around the rows.
type Texts struct {
	// Title is shown in the header.
	Title string
	// Subtitle is shown above the title in the header.
	Subtitle string
	// Footer is the comment below the rows.
	Footer string
}

// DefaultTexts returns the built-in English texts.
func DefaultTexts() Texts {
	return Texts{
		Title:    "Need Permissions",
		Subtitle: "Permissions Request",
		Footer:   "Permissions are necessary for the correct work of the application and the performance of all functions. Push are not required permissions.",
	}
}

func (t Texts) withDefaults() Texts {
	def := DefaultTexts()
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Subtitle == "" {
		t.Subtitle = def.Subtitle
	}
	if t.Footer == "" {
		t.Footer = def.Footer
	}
	return t
}
