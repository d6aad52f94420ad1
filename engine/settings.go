package engine

// =============================================================================
// SETTINGS - App configuration (presentation inputs, not computation)
// =============================================================================

// Settings is the one explicit configuration type covering every field
// the app reads. The engine consumes only Currency/CurrencySymbol and
// DefaultWorkingDays, and only for presentation and form defaults; the
// remaining fields belong to the outer app but live here so nothing
// ever reaches for an untyped extension field.
type Settings struct {
	// Currency
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`

	// Default working weekdays for new workers (0=Sunday .. 6=Saturday)
	DefaultWorkingDays WeekdaySet `json:"defaultWorkingDays"`

	// Notifications
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	NotificationTime     string `json:"notificationTime"`
	WeeklyReminders      bool   `json:"weeklyReminders"`
	MonthlyReports       bool   `json:"monthlyReports"`

	// Appearance and locale
	ThemePreference string `json:"themePreference"` // auto | light | dark
	Language        string `json:"language"`        // en | hi

	// Misc preferences
	BackupFrequency  string `json:"backupFrequency"` // daily | weekly | monthly | never
	ShowHelpTips     bool   `json:"showHelpTips"`
	ConfirmDeletions bool   `json:"confirmDeletions"`
}

// DefaultSettings returns the out-of-the-box configuration: Indian
// Rupee, Monday-Friday schedule.
func DefaultSettings() Settings {
	return Settings{
		Currency:             "INR",
		CurrencySymbol:       "₹",
		DefaultWorkingDays:   WeekdaySet{1, 2, 3, 4, 5},
		NotificationsEnabled: true,
		NotificationTime:     "09:00",
		WeeklyReminders:      true,
		MonthlyReports:       true,
		ThemePreference:      "auto",
		Language:             "en",
		BackupFrequency:      "weekly",
		ShowHelpTips:         true,
		ConfirmDeletions:     true,
	}
}
