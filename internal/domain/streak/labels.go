package streak

// Labels holds the display strings used by the weekly view and the calendar.
type Labels struct {
	// Weekdays are ordered Monday first.
	Weekdays [7]string
	// Months are ordered January first.
	Months [12]string
}

// NewDefaultLabels returns the Spanish labels shown by the app.
func NewDefaultLabels() Labels {
	return Labels{
		Weekdays: [7]string{"L", "M", "X", "J", "V", "S", "D"},
		Months: [12]string{
			"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
			"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
		},
	}
}
