package domain

import "fmt"

// NotificationSettings stores the user's reminder preferences.
// Delivery is handled by the mobile client.
type NotificationSettings struct {
	Enabled     bool `json:"enabled"`
	Hour        int  `json:"hour"`
	Minute      int  `json:"minute"`
	TimesPerDay int  `json:"timesPerDay"`
}

// DefaultNotificationSettings returns the settings used before the user chooses any.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:     false,
		Hour:        9,
		Minute:      0,
		TimesPerDay: 1,
	}
}

// Validate checks that the reminder time and frequency are in range.
func (s NotificationSettings) Validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrValidation)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("%w: minute must be between 0 and 59", ErrValidation)
	}
	if s.TimesPerDay < 1 || s.TimesPerDay > 10 {
		return fmt.Errorf("%w: times per day must be between 1 and 10", ErrValidation)
	}
	return nil
}
