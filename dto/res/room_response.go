package res

import "room-rental-app/entity"

const timeLayout = "2006-01-02 15:04:05"

// PublicRoomResponse is the catalog projection. It deliberately has no
// contact number field; the number is only reachable through the privileged
// contact lookup.
type PublicRoomResponse struct {
	ID               string   `json:"id"`
	OwnerID          string   `json:"ownerId"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Location         string   `json:"location"`
	City             string   `json:"city"`
	RentPrice        float64  `json:"rentPrice"`
	PropertyType     string   `json:"propertyType"`
	TenantPreference string   `json:"tenantPreference"`
	Images           []string `json:"images"`
	IsAvailable      bool     `json:"isAvailable"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// RoomResponse is the owner projection, contact number included.
type RoomResponse struct {
	PublicRoomResponse
	ContactNumber string `json:"contactNumber"`
}

type CityCountResponse struct {
	City      string `json:"city"`
	RoomCount int64  `json:"room_count"`
}

func NewPublicRoomResponse(room *entity.Room) PublicRoomResponse {
	images := room.Images
	if images == nil {
		images = entity.ImageList{}
	}
	return PublicRoomResponse{
		ID:               room.ID,
		OwnerID:          room.OwnerID,
		Title:            room.Title,
		Description:      room.Description,
		Location:         room.Location,
		City:             room.City,
		RentPrice:        room.RentPrice,
		PropertyType:     string(room.PropertyType),
		TenantPreference: string(room.TenantPreference),
		Images:           images,
		IsAvailable:      room.IsAvailable,
		CreatedAt:        room.CreatedAt.Format(timeLayout),
		UpdatedAt:        room.UpdatedAt.Format(timeLayout),
	}
}

func NewRoomResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		PublicRoomResponse: NewPublicRoomResponse(room),
		ContactNumber:      room.ContactNumber,
	}
}
