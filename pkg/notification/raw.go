package notification

// RawBuilder assembles a raw notification: an arbitrary payload delivered
// to the running application rather than the shell. Raw notifications carry
// no X-WindowsPhone-Target header.
type RawBuilder struct {
	headers     headerList
	contentType string
	body        []byte
}

// NewRaw creates a raw notification builder.
func NewRaw() *RawBuilder {
	return &RawBuilder{contentType: XMLContentType}
}

// MessageID sets the optional X-MessageId header.
func (b *RawBuilder) MessageID(id string) *RawBuilder {
	b.headers.addMessageID(id)
	return b
}

// NotificationClass sets the delivery batching interval.
func (b *RawBuilder) NotificationClass(d DeliveryClass) *RawBuilder {
	b.headers.addClass(d)
	return b
}

// TTL sets the notification expiration in seconds relative to receipt.
func (b *RawBuilder) TTL(seconds int64) *RawBuilder {
	b.headers.addTTL(seconds)
	return b
}

// Cache overrides the default offline caching behaviour.
func (b *RawBuilder) Cache(enabled bool) *RawBuilder {
	b.headers.addCache(enabled)
	return b
}

// RequestForStatus asks the service to include device and connection status
// headers in the response.
func (b *RawBuilder) RequestForStatus(enabled bool) *RawBuilder {
	b.headers.addStatusRequest(enabled)
	return b
}

// CallbackURI sets the notification channel callback URI.
func (b *RawBuilder) CallbackURI(uri string) *RawBuilder {
	b.headers.addCallbackURI(uri)
	return b
}

// ContentType overrides the body content type, text/xml by default.
func (b *RawBuilder) ContentType(ct string) *RawBuilder {
	b.contentType = ct
	return b
}

// Body sets the payload bytes passed through unmodified.
func (b *RawBuilder) Body(body []byte) *RawBuilder {
	b.body = body
	return b
}

// Build produces the immutable notification.
func (b *RawBuilder) Build() *Notification {
	headers := append(headerList{}, b.headers...)
	headers.addContentType(b.contentType)
	return New(headers, b.body)
}
