package dto

// SaveSettingsRequest upserts the caller's preference record.
type SaveSettingsRequest struct {
	PushNotifications  bool `json:"pushNotifications"`
	DarkMode           bool `json:"darkMode"`
	EmailNotifications bool `json:"emailNotifications"`
	AutoLogout         bool `json:"autoLogout"`
}
