// ABOUTME: Domain models for a single website conversion request and its outputs
// ABOUTME: Defines rebranding inputs, fetched source pages and reconstructed HTML

package domain

import (
	"net/url"
	"strings"
)

// ContainerID is the element id every reconstructed page is wrapped in
const ContainerID = "ghl-clone-container"

// ContainerMarker is the literal attribute the output contract looks for
const ContainerMarker = `id="` + ContainerID + `"`

// RebrandInfo holds optional substitution values applied during reconstruction
type RebrandInfo struct {
	LogoURL     string `json:"logoUrl,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	WebsiteLink string `json:"websiteLink,omitempty"`
}

// IsEmpty reports whether no rebranding value was supplied
func (r *RebrandInfo) IsEmpty() bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.LogoURL) == "" &&
		strings.TrimSpace(r.BrandName) == "" &&
		strings.TrimSpace(r.WebsiteLink) == ""
}

// ConversionRequest is the input to one conversion attempt.
// It is treated as immutable once submitted.
type ConversionRequest struct {
	// SourceURL is the absolute http(s) URL of the page to clone
	SourceURL string `json:"sourceUrl"`

	// Rebrand is optional; nil means keep the original branding
	Rebrand *RebrandInfo `json:"rebrandInfo,omitempty"`
}

// ValidSourceURL reports whether raw parses as a URL whose scheme starts with http
func ValidSourceURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(parsed.Scheme), "http") && parsed.Host != ""
}

// FetchResult is the raw HTML of a source page plus which relay produced it
type FetchResult struct {
	URL   string
	HTML  string
	Relay string
	Title string
}

// ReconstructionResult is the final embeddable HTML produced by a conversion
type ReconstructionResult struct {
	HTML string `json:"html"`
}
