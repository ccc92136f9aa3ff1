package model

// Preferences represents a user's stored display preferences.
type Preferences struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// PreferencesRequest represents a partial preferences update. Nil fields are
// left unchanged.
type PreferencesRequest struct {
	Theme         *string `json:"theme"`
	Currency      *string `json:"currency"`
	Notifications *bool   `json:"notifications"`
	Language      *string `json:"language"`
}
