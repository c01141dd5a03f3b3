package notification

import (
	"strconv"
	"strings"
)

// TileBuilder assembles a tile ("token") notification. Tile updates change
// the application's start-screen tile: background images, counter badge and
// front/back titles.
type TileBuilder struct {
	headers headerList

	backgroundImage     string
	count               *int
	title               string
	backBackgroundImage string
	backTitle           string
	backContent         string
	clearBack           bool
}

// NewTile creates a tile notification builder.
func NewTile() *TileBuilder {
	b := &TileBuilder{}
	b.headers.addTarget("token")
	b.headers.addContentType(XMLContentType)
	return b
}

// MessageID sets the optional X-MessageId header used to associate the
// notification with its response.
func (b *TileBuilder) MessageID(id string) *TileBuilder {
	b.headers.addMessageID(id)
	return b
}

// NotificationClass sets the delivery batching interval.
func (b *TileBuilder) NotificationClass(d DeliveryClass) *TileBuilder {
	b.headers.addClass(d)
	return b
}

// TTL sets the notification expiration in seconds relative to receipt.
func (b *TileBuilder) TTL(seconds int64) *TileBuilder {
	b.headers.addTTL(seconds)
	return b
}

// Cache overrides the default offline caching behaviour.
func (b *TileBuilder) Cache(enabled bool) *TileBuilder {
	b.headers.addCache(enabled)
	return b
}

// RequestForStatus asks the service to include device and connection status
// headers in the response.
func (b *TileBuilder) RequestForStatus(enabled bool) *TileBuilder {
	b.headers.addStatusRequest(enabled)
	return b
}

// CallbackURI sets the notification channel callback URI. Required for
// authenticated senders.
func (b *TileBuilder) CallbackURI(uri string) *TileBuilder {
	b.headers.addCallbackURI(uri)
	return b
}

// BackgroundImage sets the front tile background image URI.
func (b *TileBuilder) BackgroundImage(uri string) *TileBuilder {
	b.backgroundImage = uri
	return b
}

// Count sets the counter badge shown on the tile.
func (b *TileBuilder) Count(count int) *TileBuilder {
	b.count = &count
	return b
}

// Title sets the front tile title.
func (b *TileBuilder) Title(title string) *TileBuilder {
	b.title = title
	return b
}

// BackBackgroundImage sets the back tile background image URI.
func (b *TileBuilder) BackBackgroundImage(uri string) *TileBuilder {
	b.backBackgroundImage = uri
	return b
}

// BackTitle sets the back tile title.
func (b *TileBuilder) BackTitle(title string) *TileBuilder {
	b.backTitle = title
	return b
}

// BackContent sets the back tile content text.
func (b *TileBuilder) BackContent(content string) *TileBuilder {
	b.backContent = content
	return b
}

// ClearBack marks the back-of-tile properties to be cleared on the device
// instead of updated.
func (b *TileBuilder) ClearBack() *TileBuilder {
	b.clearBack = true
	return b
}

// Build produces the immutable notification.
func (b *TileBuilder) Build() *Notification {
	var sb strings.Builder
	sb.WriteString(xmlPrologue)
	sb.WriteString(`<wp:Notification xmlns:wp="WPNotification"><wp:Tile>`)
	sb.WriteString(xmlElement("BackgroundImage", b.backgroundImage))
	if b.count != nil {
		sb.WriteString(xmlElement("Count", strconv.Itoa(*b.count)))
	}
	sb.WriteString(xmlElement("Title", b.title))
	back := xmlElement
	if b.clearBack {
		back = xmlElementClear
	}
	sb.WriteString(back("BackBackgroundImage", b.backBackgroundImage))
	sb.WriteString(back("BackTitle", b.backTitle))
	sb.WriteString(back("BackContent", b.backContent))
	sb.WriteString(`</wp:Tile></wp:Notification>`)

	return New(b.headers, []byte(sb.String()))
}
