package req

type EditProfileRequest struct {
	FullName  string `json:"fullName" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"omitempty,min=8,max=15"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}
