package notification

import "strings"

// xmlPrologue opens every tile and toast payload.
const xmlPrologue = `<?xml version="1.0" encoding="utf-8"?>`

// EscapeXML replaces the five XML special characters with their entity
// references. All other characters pass through unchanged.
func EscapeXML(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, ch := range value {
		switch ch {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// xmlElement renders a wp-namespaced element with escaped content.
// Empty or whitespace-only content emits nothing.
func xmlElement(name, content string) string {
	return xmlElementAction(name, content, false)
}

// xmlElementClear renders the element with the Action="Clear" attribute,
// used by tile updates that erase a property on the device.
func xmlElementClear(name, content string) string {
	return xmlElementAction(name, content, true)
}

func xmlElementAction(name, content string, clear bool) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<wp:")
	sb.WriteString(name)
	if clear {
		sb.WriteString(` Action="Clear"`)
	}
	sb.WriteString(">")
	sb.WriteString(EscapeXML(content))
	sb.WriteString("</wp:")
	sb.WriteString(name)
	sb.WriteString(">")
	return sb.String()
}
