package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"ampersand", "A & B", "A &amp; B"},
		{"angle brackets", "<tag>", "&lt;tag&gt;"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"apostrophe", "it's", "it&apos;s"},
		{"all five", `A & B <tag> "quoted" 'q'`, "A &amp; B &lt;tag&gt; &quot;quoted&quot; &apos;q&apos;"},
		{"empty", "", ""},
		{"unicode passthrough", "héllo 世界", "héllo 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeXML(tt.in))
		})
	}
}

func TestXMLElement(t *testing.T) {
	assert.Equal(t, "<wp:Title>News</wp:Title>", xmlElement("Title", "News"))
	assert.Equal(t, "<wp:Title>A &amp; B</wp:Title>", xmlElement("Title", "A & B"))

	// Empty and whitespace-only content emits nothing.
	assert.Equal(t, "", xmlElement("Title", ""))
	assert.Equal(t, "", xmlElement("Title", "   \t\n"))
}

func TestXMLElementClear(t *testing.T) {
	assert.Equal(t, `<wp:BackTitle Action="Clear">old</wp:BackTitle>`, xmlElementClear("BackTitle", "old"))

	// The empty-content rule applies to clearing elements too.
	assert.Equal(t, "", xmlElementClear("BackTitle", ""))
}
