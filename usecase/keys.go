package usecase

// Logical query key prefixes shared by the access layers and the live query
// cache. Per-user keys append the owning id, e.g.
// livequery.Key(KeyMyRooms, ownerID).
const (
	KeyRooms            = "rooms"
	KeyMyRooms          = "my-rooms"
	KeyAvailableCities  = "available-cities"
	KeyMyInquiries      = "my-inquiries"
	KeyManagerInquiries = "manager-inquiries"
	KeyUserRole         = "user-role"
	KeyUserProfile      = "user-profile"
	KeyRoomContact      = "room-contact"
)
