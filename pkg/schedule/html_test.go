package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Bauarbeiten", "Bauarbeiten"},
		{"entities", "U3 &amp; U6", "U3 & U6"},
		{"inline tags keep spacing", "Zwischen <b>Odeonsplatz</b> und <i>Giselastraße</i>", "Zwischen Odeonsplatz und Giselastraße"},
		{"paragraphs", "<p>Eins</p><p>Zwei</p>", "Eins\n\nZwei"},
		{"line break", "Eins<br>Zwei<br/>Drei", "Eins\nZwei\nDrei"},
		{"list", "<p>Betroffen:</p><ul><li>U3</li><li>U6</li></ul>", "Betroffen:\n\n* U3\n* U6"},
		{"collapses whitespace", "<div>\n   Eins\n\t  Zwei  </div>", "Eins Zwei"},
		{"drops scripts and comments", "<p>Text<!-- note --></p><script>alert(1)</script>", "Text"},
		{"links keep text", `Mehr unter <a href="https://www.mvg.de">mvg.de</a>.`, "Mehr unter mvg.de."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}
