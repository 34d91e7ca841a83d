package dto

// ProfileUpdateRequest carries optional profile edits; at least one field
// must be present.
type ProfileUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}
