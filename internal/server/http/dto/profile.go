package dto

// UpdateProfileRequest describes editable profile fields. Blank fields keep
// their current value; the phone is not editable at all.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ChangePasswordRequest describes a password rotation.
type ChangePasswordRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
}
