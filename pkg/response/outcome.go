// Package response classifies MPNS HTTP responses into logical delivery outcomes.
//
// The push notification service reports delivery state through the HTTP
// status code plus three response headers:
//
//	X-NotificationStatus:       Received | QueueFull | Suppressed | Dropped
//	X-DeviceConnectionStatus:   Connected | TempDisconnected | Disconnected | Inactive
//	X-SubscriptionStatus:       Active | Expired
//
// The catalog below maps every documented combination to one outcome. A nil
// expected header value is a wildcard matching any value, including an
// absent header.
package response

// Outcome is the logical classification of a push delivery attempt.
type Outcome struct {
	name                   string
	statusCode             int
	notificationStatus     *string
	deviceConnectionStatus *string
	subscriptionStatus     *string
	success                bool
	shouldRetry            bool
}

// Name returns the outcome identifier, e.g. "Received" or "QueueFull".
func (o Outcome) Name() string { return o.name }

// StatusCode returns the HTTP status code this outcome matches.
func (o Outcome) StatusCode() int { return o.statusCode }

// NotificationStatus returns the expected X-NotificationStatus value, or nil for wildcard.
func (o Outcome) NotificationStatus() *string { return o.notificationStatus }

// DeviceConnectionStatus returns the expected X-DeviceConnectionStatus value, or nil for wildcard.
func (o Outcome) DeviceConnectionStatus() *string { return o.deviceConnectionStatus }

// SubscriptionStatus returns the expected X-SubscriptionStatus value, or nil for wildcard.
func (o Outcome) SubscriptionStatus() *string { return o.subscriptionStatus }

// IsSuccessful reports whether the notification was accepted for delivery.
func (o Outcome) IsSuccessful() bool { return o.success }

// ShouldRetry reports whether the vendor recommends re-sending later.
// The advice is informational; this library performs no retries itself.
func (o Outcome) ShouldRetry() bool { return o.shouldRetry }

// String returns the outcome name.
func (o Outcome) String() string { return o.name }

func expect(s string) *string { return &s }

var (
	// Received means the notification was accepted and the device is connected.
	Received = Outcome{"Received", 200, expect("Received"), expect("Connected"), expect("Active"), true, false}

	// Disconnected means the notification was accepted but the device has
	// been offline for more than 24 hours.
	Disconnected = Outcome{"Disconnected", 200, expect("Received"), expect("Disconnected"), expect("Active"), true, false}

	// Queued means the notification was accepted and queued while the device
	// is temporarily disconnected.
	Queued = Outcome{"Queued", 200, expect("Received"), expect("TempDisconnected"), expect("Active"), true, false}

	// QueueFull means the subscription's notification queue overflowed.
	// The sender should re-send later, backing off in minute increments.
	QueueFull = Outcome{"QueueFull", 200, expect("QueueFull"), nil, expect("Active"), false, true}

	// Suppressed means the service received and dropped the notification
	// because the channel suppresses this notification class.
	Suppressed = Outcome{"Suppressed", 200, expect("Suppressed"), nil, expect("Active"), false, false}

	// DroppedByClient means the device received and dropped the notification,
	// typically with background execution disabled or battery saving on.
	DroppedByClient = Outcome{"DroppedByClient", 200, expect("Dropped"), expect("Connected"), expect("Active"), false, false}

	// BadRequest means the request carried a malformed XML document or URI.
	BadRequest = Outcome{"BadRequest", 400, nil, nil, nil, false, false}

	// Unauthorized means the sender is not authorized for this subscription.
	Unauthorized = Outcome{"Unauthorized", 401, nil, nil, nil, false, false}

	// Expired means the subscription no longer exists. The sender should
	// stop sending to it and drop the associated subscription state.
	Expired = Outcome{"Expired", 404, nil, nil, expect("Expired"), false, false}

	// MethodNotAllowed means a method other than POST was used.
	MethodNotAllowed = Outcome{"MethodNotAllowed", 405, nil, nil, nil, false, false}

	// OverLimit means an unauthenticated sender hit the daily throttling
	// limit for the subscription. Re-sending once per hour is acceptable.
	OverLimit = Outcome{"OverLimit", 406, expect("Dropped"), nil, expect("Active"), false, true}

	// InactiveState means the device is inactive. At most one re-attempt per
	// hour is allowed before the service blocks the sender.
	InactiveState = Outcome{"InactiveState", 412, expect("Dropped"), expect("Inactive"), nil, false, true}

	// ServiceUnavailable means the service cannot process the request.
	// The sender should re-send later with exponential backoff.
	ServiceUnavailable = Outcome{"ServiceUnavailable", 503, nil, nil, nil, false, true}

	// Undefined is the fallback for responses that fit no catalog entry.
	// Its status code 0 never occurs on real traffic, so it is only ever
	// returned as a default, never matched.
	Undefined = Outcome{"Undefined", 0, nil, nil, nil, false, true}
)

// catalog is the ordered outcome matrix consulted by Classify. The first
// satisfying entry wins; Undefined is excluded and used only as fallback.
var catalog = []Outcome{
	Received,
	Disconnected,
	Queued,
	QueueFull,
	Suppressed,
	DroppedByClient,
	BadRequest,
	Unauthorized,
	Expired,
	MethodNotAllowed,
	OverLimit,
	InactiveState,
	ServiceUnavailable,
}

// Catalog returns a copy of the ordered outcome matrix.
func Catalog() []Outcome {
	out := make([]Outcome, len(catalog))
	copy(out, catalog)
	return out
}
