package notification

import "strconv"

// headerList accumulates header pairs in insertion order. Duplicate names
// are retained; every accumulated pair is transmitted.
type headerList []Header

func (l *headerList) add(name, value string) {
	*l = append(*l, Header{Name: name, Value: value})
}

func (l *headerList) addBool(name string, enabled bool, onTrue, onFalse string) {
	if enabled {
		l.add(name, onTrue)
	} else {
		l.add(name, onFalse)
	}
}

func (l *headerList) addMessageID(id string) { l.add(HeaderMessageID, id) }

func (l *headerList) addClass(d DeliveryClass) { l.add(HeaderNotificationClass, d.String()) }

func (l *headerList) addTTL(seconds int64) { l.add(HeaderTTL, strconv.FormatInt(seconds, 10)) }

func (l *headerList) addCallbackURI(uri string) { l.add(HeaderCallbackURI, uri) }

func (l *headerList) addCache(enabled bool) { l.addBool(HeaderCachePolicy, enabled, "cache", "no-cache") }

func (l *headerList) addStatusRequest(on bool) { l.addBool(HeaderRequestForStatus, on, "true", "false") }

func (l *headerList) addContentType(ct string) { l.add(HeaderContentType, ct) }

func (l *headerList) addTarget(target string) { l.add(HeaderTarget, target) }
