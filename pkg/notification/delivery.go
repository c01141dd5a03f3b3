package notification

import "strconv"

// DeliveryClass is the vendor batching interval requested for a
// notification. The zero value delivers immediately.
type DeliveryClass int

const (
	// Immediately requests immediate delivery.
	Immediately DeliveryClass = iota
	// Within450 requests delivery within 450 seconds.
	Within450
	// Within900 requests delivery within 900 seconds.
	Within900
)

// Value returns the X-NotificationClass wire value. Unknown classes fall
// back to immediate delivery.
func (d DeliveryClass) Value() int {
	switch d {
	case Within450:
		return 11
	case Within900:
		return 21
	default:
		return 1
	}
}

// String returns the wire value as a decimal string.
func (d DeliveryClass) String() string {
	return strconv.Itoa(d.Value())
}
