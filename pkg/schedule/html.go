package schedule

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespace = regexp.MustCompile(`\s+`)

var blockTags = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "section": true, "article": true, "header": true, "footer": true,
}

// HTMLToText flattens an HTML fragment into plain text. Block elements start
// new paragraphs, <br> breaks the line and list items are bulleted with "* ".
func HTMLToText(src string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return strings.TrimSpace(src)
	}

	var sb strings.Builder
	writeText(&sb, doc.Selection)
	return tidy(sb.String())
}

func writeText(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch name := goquery.NodeName(s); {
		case name == "#text":
			sb.WriteString(whitespace.ReplaceAllString(s.Text(), " "))
		case name == "br":
			sb.WriteString("\n")
		case name == "li":
			sb.WriteString("\n* ")
			writeText(sb, s)
		case name == "#comment", name == "script", name == "style", name == "head":
		case blockTags[name]:
			sb.WriteString("\n\n")
			writeText(sb, s)
			sb.WriteString("\n\n")
		default:
			writeText(sb, s)
		}
	})
}

// tidy trims every line, collapses runs of blank lines to one and drops
// leading and trailing blank lines.
func tidy(raw string) string {
	var lines []string
	blank := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(lines) > 0
			continue
		}
		if blank {
			lines = append(lines, "")
			blank = false
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
