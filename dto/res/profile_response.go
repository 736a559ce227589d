package res

import "room-rental-app/entity"

type ProfileResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func NewProfileResponse(profile *entity.Profile, role string) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
		Role:      role,
		CreatedAt: profile.CreatedAt.Format(timeLayout),
	}
}
