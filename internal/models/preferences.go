package models

// Preferences is the UI preference blob each user keeps client-side.
// It is stored as a single JSON value per user and never sent to the backend.
// swagger:model Preferences
type Preferences struct {
	// UI theme, light or dark
	Theme string `json:"theme"`

	// UI language code
	Language string `json:"language"`

	// Toast display defaults
	NotificationSettings ToastPreferences `json:"notificationSettings"`

	// Table rendering defaults
	TableSettings TablePreferences `json:"tableSettings"`
}

// ToastPreferences controls which toasts are shown and how long they stay.
type ToastPreferences struct {
	ShowSuccessMessages bool  `json:"showSuccessMessages"`
	ShowErrorMessages   bool  `json:"showErrorMessages"`
	AutoCloseDelay      int64 `json:"autoCloseDelay"` // milliseconds
}

// TablePreferences controls list pagination and ordering.
type TablePreferences struct {
	ItemsPerPage int    `json:"itemsPerPage"`
	SortOrder    string `json:"sortOrder"`
}

// DefaultPreferences returns the preference blob used before the user saves one.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    "light",
		Language: "es",
		NotificationSettings: ToastPreferences{
			ShowSuccessMessages: true,
			ShowErrorMessages:   true,
			AutoCloseDelay:      5000,
		},
		TableSettings: TablePreferences{
			ItemsPerPage: 10,
			SortOrder:    "desc",
		},
	}
}
