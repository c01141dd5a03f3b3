package response

import (
	"net/http"

	"github.com/notifykit/mpns/pkg/logger"
)

// Response header names carrying the vendor delivery state.
const (
	HeaderNotificationStatus     = "X-NotificationStatus"
	HeaderDeviceConnectionStatus = "X-DeviceConnectionStatus"
	HeaderSubscriptionStatus     = "X-SubscriptionStatus"
)

// Classifier maps raw HTTP responses onto the outcome catalog.
// The zero-value Classifier is usable and logs nothing.
type Classifier struct {
	logger logger.Logger
}

// NewClassifier creates a classifier that reports unmatched responses
// through the given logger.
func NewClassifier(log logger.Logger) *Classifier {
	if log == nil {
		log = logger.Discard
	}
	return &Classifier{logger: log}
}

// Classify selects the catalog outcome for the given status code and header
// values. A nil header value means the vendor omitted that header; it only
// satisfies wildcard entries. Comparison is exact and case-sensitive.
// When no entry matches, Undefined is returned and the combination logged.
func (c *Classifier) Classify(statusCode int, notificationStatus, deviceConnectionStatus, subscriptionStatus *string) Outcome {
	for _, o := range catalog {
		if o.statusCode != statusCode {
			continue
		}
		if !headerMatches(o.notificationStatus, notificationStatus) {
			continue
		}
		if !headerMatches(o.deviceConnectionStatus, deviceConnectionStatus) {
			continue
		}
		if !headerMatches(o.subscriptionStatus, subscriptionStatus) {
			continue
		}
		return o
	}

	if c.logger != nil {
		c.logger.Error("Unmatched response combination",
			"status_code", statusCode,
			"notification_status", stringOrAbsent(notificationStatus),
			"device_connection_status", stringOrAbsent(deviceConnectionStatus),
			"subscription_status", stringOrAbsent(subscriptionStatus))
	}
	return Undefined
}

// ClassifyResponse extracts the vendor status headers from resp and
// classifies them. The response body is not read.
func (c *Classifier) ClassifyResponse(resp *http.Response) Outcome {
	return c.Classify(resp.StatusCode,
		headerValue(resp, HeaderNotificationStatus),
		headerValue(resp, HeaderDeviceConnectionStatus),
		headerValue(resp, HeaderSubscriptionStatus))
}

// headerMatches reports whether an actual header value satisfies a catalog
// expectation. A nil expectation is a wildcard.
func headerMatches(expected, actual *string) bool {
	if expected == nil {
		return true
	}
	return actual != nil && *expected == *actual
}

// headerValue returns the first value of the named header, or nil when the
// header is absent.
func headerValue(resp *http.Response, name string) *string {
	values, ok := resp.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func stringOrAbsent(s *string) string {
	if s == nil {
		return "(absent)"
	}
	return *s
}
