// ABOUTME: Builds the bounded reconstruction prompt and fixed system instruction
// ABOUTME: Pure string assembly: truncated source, rebrand block, layout directives and the CSS reset

package reconstruct

import (
	"fmt"
	"strings"

	"web2one-api/core/domain"
)

// DefaultMaxSourceChars bounds how much source HTML is embedded in a prompt
const DefaultMaxSourceChars = 150000

// CSSReset is injected at the top of every clone's <style> block.
// The page builder depends on these exact rules.
const CSSReset = `* { box-sizing: border-box !important; }
body, html { margin: 0 !important; padding: 0 !important; overflow-x: hidden !important; width: 100% !important; }
#ghl-clone-container {
  width: 100vw !important;
  margin-left: calc(-50vw + 50%) !important;
  margin-right: calc(-50vw + 50%) !important;
  padding: 0 !important;
  position: relative !important;
  left: 0 !important;
  right: 0 !important;
  background: transparent !important;
}
section { position: relative !important; width: 100% !important; clear: both !important; }`

// SystemInstruction is sent unchanged with every reconstruction call
const SystemInstruction = "You are an Elite Web Architect specializing in High-Fidelity Static Page Reconstruction.\n" +
	"Your goal is to transform a website's source code into a single, bulletproof page-builder compatible HTML file.\n" +
	"CRITICAL: Output ONLY the raw HTML code. Do NOT include markdown blocks (```html), backticks, or any conversational text."

// sourceMarker precedes the embedded source HTML; it is always the last section of the prompt
const sourceMarker = "SOURCE HTML DATA:\n"

// Request is what gets sent to the generation backend
type Request struct {
	SystemInstruction string `json:"systemInstruction"`
	Prompt            string `json:"prompt"`
}

// Builder assembles reconstruction requests
type Builder struct {
	maxSourceChars int
}

// NewBuilder creates a builder that truncates source HTML to maxSourceChars characters
func NewBuilder(maxSourceChars int) *Builder {
	if maxSourceChars <= 0 {
		maxSourceChars = DefaultMaxSourceChars
	}
	return &Builder{maxSourceChars: maxSourceChars}
}

// Build returns the system instruction and prompt for one page
func (b *Builder) Build(rawHTML, sourceURL string, rebrand *domain.RebrandInfo) Request {
	var p strings.Builder

	fmt.Fprintf(&p, "URGENT TASK: Clone the website %s for the page builder.\n\n", sourceURL)

	p.WriteString("PREVENTING BLANK PAGES & OVERLAPPING (CORE FIXES):\n")
	p.WriteString("1. STATIC RECONSTRUCTION: If the source is a dynamic app (React/Vue), do not just copy script tags. ")
	p.WriteString("Reconstruct the VISUAL SECTIONS (Hero, About, Gallery, Contact, Footer) as static HTML components with high-end CSS.\n")
	p.WriteString("2. HERO & LAYOUT:\n")
	p.WriteString("   - Ensure the Hero section uses \"min-height: 100vh !important\" or \"height: auto !important\".\n")
	p.WriteString("   - NEVER use \"overflow: hidden\" on sections that contain content; this causes blank/missing sections.\n")
	p.WriteString("   - Use \"display: block\" or \"display: flex\" with proper wrapping.\n")
	p.WriteString("3. TEXT OVERLAPPING: Use modern Flexbox/Grid for layout. Ensure containers have enough padding and font sizes are responsive.\n\n")

	p.WriteString("FULL-WIDTH INJECTION (MANDATORY):\n")
	p.WriteString("Every clone must have this reset at the top of its <style> block:\n")
	p.WriteString("<style>\n")
	p.WriteString(CSSReset)
	p.WriteString("\n</style>\n\n")

	p.WriteString("ASSET HANDLING:\n")
	fmt.Fprintf(&p, "- Prepend \"%s\" to all relative URLs for images, icons, and backgrounds.\n", sourceURL)
	p.WriteString("- If a section appears empty in the source (client-side rendered), use the rebranding info and site title ")
	p.WriteString("to reconstruct a professional section that matches the target's style.\n\n")

	if block := rebrandBlock(rebrand); block != "" {
		p.WriteString(block)
		p.WriteString("\n")
	}

	p.WriteString(sourceMarker)
	p.WriteString(truncate(rawHTML, b.maxSourceChars))

	return Request{
		SystemInstruction: SystemInstruction,
		Prompt:            p.String(),
	}
}

func rebrandBlock(rebrand *domain.RebrandInfo) string {
	if rebrand.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("REBRANDING & PERSONALIZATION:\n")
	fmt.Fprintf(&b, "- Replace the main logo/identity with: %q.\n", valueOr(rebrand.LogoURL, "original"))
	fmt.Fprintf(&b, "- Update all text instances of the brand name to: %q.\n", valueOr(rebrand.BrandName, "original"))
	fmt.Fprintf(&b, "- Change all primary links (buttons, nav, footer) to: %q.\n", valueOr(rebrand.WebsiteLink, "#"))
	return b.String()
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

// truncate cuts s to at most max characters without splitting a rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
