package dto

// UpdateProfileRequest replaces the mutable profile fields of a user.
type UpdateProfileRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Birthday       string `json:"birthday"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}

// UploadResponse returns the public URL of a stored profile picture.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
