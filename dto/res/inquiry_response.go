package res

import "room-rental-app/entity"

type InquiryResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"roomId"`
	RoomTitle     string `json:"roomTitle,omitempty"`
	CustomerID    string `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func NewInquiryResponse(inquiry *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:            inquiry.ID,
		RoomID:        inquiry.RoomID,
		RoomTitle:     inquiry.Room.Title,
		CustomerID:    inquiry.CustomerID,
		CustomerName:  inquiry.CustomerName,
		CustomerEmail: inquiry.CustomerEmail,
		CustomerPhone: inquiry.CustomerPhone,
		Message:       inquiry.Message,
		Status:        string(inquiry.Status),
		CreatedAt:     inquiry.CreatedAt.Format(timeLayout),
		UpdatedAt:     inquiry.UpdatedAt.Format(timeLayout),
	}
}
