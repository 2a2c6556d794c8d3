// ABOUTME: Cleanup pipeline for raw model output: strips code fences and stray document tags
// ABOUTME: Guarantees exactly one ghl-clone-container wrapper around the result

package reconstruct

import (
	"regexp"
	"strings"

	"web2one-api/core/domain"
)

var (
	htmlFenceOpener = regexp.MustCompile("(?i)^```html\\s*")
	bareFenceOpener = regexp.MustCompile("^```\\s*")
	fenceCloser     = regexp.MustCompile("\\s*```$")
)

// Cleanup normalizes raw model output into embeddable HTML.
// Cleanup(Cleanup(s)) == Cleanup(s).
func Cleanup(text string) string {
	out := strings.TrimSpace(text)
	out = htmlFenceOpener.ReplaceAllString(out, "")
	out = bareFenceOpener.ReplaceAllString(out, "")
	out = fenceCloser.ReplaceAllString(out, "")

	first := strings.Index(out, "<")
	last := strings.LastIndex(out, ">")
	if first != -1 && last > first {
		out = out[first : last+1]
	}

	return Wrap(out)
}

// Wrap puts html inside the clone container unless it already carries the marker
func Wrap(html string) string {
	if strings.Contains(html, domain.ContainerMarker) {
		return html
	}
	return `<div id="` + domain.ContainerID + `">` + html + `</div>`
}
