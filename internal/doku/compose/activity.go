package compose

// Activity carries the fields of a selected Tätigkeit that appear in the
// generated output.
type Activity struct {
	Title       string
	Description string
	Measure     string
}

// ActivityOutput holds the four independently copyable fields for the
// activity tab.
type ActivityOutput struct {
	Title        string
	DocumentedBy string
	Description  string
	Measure      string
}

// ActivityText formats one selected activity. Title and measure pass through
// verbatim; the documenting person is reversed into "Lastname, Firstname";
// the description is prefixed with the GL/BE attribution. The activity
// description is assumed to carry its own punctuation, so no period is
// appended.
func ActivityText(activity Activity, personName, documentingPerson string) ActivityOutput {
	documenter := documentingPerson
	if documenter == "" {
		documenter = NamePlaceholder
	}

	return ActivityOutput{
		Title:        activity.Title,
		DocumentedBy: ReverseName(documenter),
		Description:  documenter + " (GL): " + personName + " (BE) " + activity.Description,
		Measure:      activity.Measure,
	}
}
