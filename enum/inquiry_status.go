package enum

// InquiryStatus tracks an inquiry through its lifecycle. The persisted values
// are internal; the UI relabels contacted as "Booked" and resolved as
// "Cancelled". All three statuses remain freely transitionable.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusResolved  InquiryStatus = "resolved"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusResolved:
		return true
	}
	return false
}
