package models

// Player represents one person entry from a roster file, either on the
// event side or on the reference side. Fields hold the raw input form;
// normalized views are derived where needed, never written back.
type Player struct {
	// ExternID is the external identifier. Unique within the reference
	// set; may be empty or a placeholder in event records.
	ExternID string `json:"extern_id"`
	// LastName is the family name as read from the file.
	LastName string `json:"last_name"`
	// FirstName is the given name as read from the file.
	FirstName string `json:"first_name"`
	// Sex is the sex code (e.g. M, W).
	Sex string `json:"sex"`
	// Association is the association or nationality code (e.g. GER).
	Association string `json:"association"`
	// DoB is the day of birth. Zero means unknown.
	DoB int `json:"dob"`
	// MoB is the month of birth. Zero means unknown.
	MoB int `json:"mob"`
	// YoB is the year of birth. Zero means unknown.
	YoB int `json:"yob"`
}
