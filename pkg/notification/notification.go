// Package notification provides MPNS notification values and fluent builders
// for the tile, toast and raw notification kinds.
package notification

import (
	"net/http"

	"github.com/google/uuid"
)

// Request header names understood by the push notification service.
const (
	HeaderMessageID         = "X-MessageId"
	HeaderNotificationClass = "X-NotificationClass"
	HeaderTarget            = "X-WindowsPhone-Target"
	HeaderTTL               = "X-WNS-TTL"
	HeaderCachePolicy       = "X-WNS-Cache-Policy"
	HeaderRequestForStatus  = "X-WNS-RequestForStatus"
	HeaderCallbackURI       = "X-CallbackURI"
	HeaderContentType       = "Content-Type"
)

// XMLContentType is the body content type for tile and toast notifications.
const XMLContentType = "text/xml"

// Header is a single request header pair.
type Header struct {
	Name  string
	Value string
}

// Notification is an immutable push notification: an ordered header list and
// a UTF-8 body. Duplicate header names are retained and all pairs are sent.
type Notification struct {
	headers []Header
	body    []byte
}

// New creates a notification from an ordered header list and body.
// Both slices are copied.
func New(headers []Header, body []byte) *Notification {
	h := make([]Header, len(headers))
	copy(h, headers)
	b := make([]byte, len(body))
	copy(b, body)
	return &Notification{headers: h, body: b}
}

// Headers returns the ordered request headers, duplicates included.
func (n *Notification) Headers() []Header {
	out := make([]Header, len(n.headers))
	copy(out, n.headers)
	return out
}

// Body returns the UTF-8 encoded payload.
func (n *Notification) Body() []byte {
	out := make([]byte, len(n.body))
	copy(out, n.body)
	return out
}

// MessageID returns the value of the first X-MessageId header, or "".
func (n *Notification) MessageID() string {
	for _, h := range n.headers {
		if h.Name == HeaderMessageID {
			return h.Value
		}
	}
	return ""
}

// ApplyHeaders adds every accumulated header pair to req in order.
func (n *Notification) ApplyHeaders(req *http.Request) {
	for _, h := range n.headers {
		req.Header.Add(h.Name, h.Value)
	}
}

// NewMessageID generates a random message identifier suitable for the
// X-MessageId header.
func NewMessageID() string {
	return uuid.NewString()
}
