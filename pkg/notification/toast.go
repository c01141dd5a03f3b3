package notification

import "strings"

// ToastBuilder assembles a toast notification: a banner with a bold title,
// a sub-title and an optional application navigation parameter.
type ToastBuilder struct {
	headers headerList

	title    string
	subtitle string
	param    string
}

// NewToast creates a toast notification builder.
func NewToast() *ToastBuilder {
	b := &ToastBuilder{}
	b.headers.addTarget("toast")
	b.headers.addContentType(XMLContentType)
	return b
}

// MessageID sets the optional X-MessageId header.
func (b *ToastBuilder) MessageID(id string) *ToastBuilder {
	b.headers.addMessageID(id)
	return b
}

// NotificationClass sets the delivery batching interval.
func (b *ToastBuilder) NotificationClass(d DeliveryClass) *ToastBuilder {
	b.headers.addClass(d)
	return b
}

// TTL sets the notification expiration in seconds relative to receipt.
func (b *ToastBuilder) TTL(seconds int64) *ToastBuilder {
	b.headers.addTTL(seconds)
	return b
}

// Cache overrides the default offline caching behaviour.
func (b *ToastBuilder) Cache(enabled bool) *ToastBuilder {
	b.headers.addCache(enabled)
	return b
}

// RequestForStatus asks the service to include device and connection status
// headers in the response.
func (b *ToastBuilder) RequestForStatus(enabled bool) *ToastBuilder {
	b.headers.addStatusRequest(enabled)
	return b
}

// CallbackURI sets the notification channel callback URI.
func (b *ToastBuilder) CallbackURI(uri string) *ToastBuilder {
	b.headers.addCallbackURI(uri)
	return b
}

// Title sets the bold first line of the toast.
func (b *ToastBuilder) Title(title string) *ToastBuilder {
	b.title = title
	return b
}

// Subtitle sets the second line of the toast.
func (b *ToastBuilder) Subtitle(subtitle string) *ToastBuilder {
	b.subtitle = subtitle
	return b
}

// Param sets the page and query string the application navigates to when
// the toast is tapped.
func (b *ToastBuilder) Param(param string) *ToastBuilder {
	b.param = param
	return b
}

// Build produces the immutable notification.
func (b *ToastBuilder) Build() *Notification {
	var sb strings.Builder
	sb.WriteString(xmlPrologue)
	sb.WriteString(`<wp:Notification xmlns:wp="WPNotification"><wp:Toast>`)
	sb.WriteString(xmlElement("Text1", b.title))
	sb.WriteString(xmlElement("Text2", b.subtitle))
	sb.WriteString(xmlElement("Param", b.param))
	sb.WriteString(`</wp:Toast></wp:Notification>`)

	return New(b.headers, []byte(sb.String()))
}
