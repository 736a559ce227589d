package req

type CreateInquiryRequest struct {
	RoomID        string `json:"roomId" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required,min=2"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,min=8"`
	Message       string `json:"message" validate:"required,min=10"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted resolved"`
}
