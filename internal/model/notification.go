package model

// NotificationSettings configures the recurring daily reminder.
type NotificationSettings struct {
	// Enabled turns the daily reminder on or off.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Time is the trigger time in "HH:mm" (24h).
	Time string `json:"time" mapstructure:"time"`

	// Title is the notification headline.
	Title string `json:"title" mapstructure:"title"`

	// Body is the notification text.
	Body string `json:"body" mapstructure:"body"`
}

// Notification is a reminder that has fired.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Title is the headline shown to the user.
	Title string `json:"title"`

	// Body is the human-readable notification text.
	Body string `json:"body"`

	// FiredAt is when the trigger elapsed (epoch milliseconds).
	FiredAt int64 `json:"firedAt"`

	// Test marks notifications sent on demand rather than by the schedule.
	Test bool `json:"test,omitempty"`
}
