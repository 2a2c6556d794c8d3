// ABOUTME: Request DTOs for conversion, clone and generate endpoints
// ABOUTME: Converts request bodies into domain conversion inputs

package requests

import (
	"strings"

	"web2one-api/core/domain"
)

// RebrandRequest carries optional rebranding values
type RebrandRequest struct {
	LogoURL     string `json:"logoUrl,omitempty" maxLength:"2048" doc:"Logo URL replacing the source identity"`
	BrandName   string `json:"brandName,omitempty" maxLength:"200" doc:"Brand name replacing the source brand"`
	WebsiteLink string `json:"websiteLink,omitempty" maxLength:"2048" doc:"Link target for buttons, nav and footer"`
}

// ToDomain returns nil when no value was supplied
func (r *RebrandRequest) ToDomain() *domain.RebrandInfo {
	if r == nil {
		return nil
	}
	info := &domain.RebrandInfo{
		LogoURL:     strings.TrimSpace(r.LogoURL),
		BrandName:   strings.TrimSpace(r.BrandName),
		WebsiteLink: strings.TrimSpace(r.WebsiteLink),
	}
	if info.IsEmpty() {
		return nil
	}
	return info
}

// ConversionRequest is the body of POST /api/conversions and POST /api/clone.
// The URL is validated by the pipeline so invalid input gets its user-facing message.
type ConversionRequest struct {
	URL     string          `json:"url" minLength:"1" maxLength:"2048" doc:"Absolute http(s) URL of the page to clone"`
	Rebrand *RebrandRequest `json:"rebrandInfo,omitempty" doc:"Optional rebranding"`
}

// ToDomain converts the body into a conversion request
func (r *ConversionRequest) ToDomain() domain.ConversionRequest {
	return domain.ConversionRequest{
		SourceURL: strings.TrimSpace(r.URL),
		Rebrand:   r.Rebrand.ToDomain(),
	}
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	RawHTML     string          `json:"rawHtml" minLength:"1" doc:"Fetched source HTML"`
	OriginalURL string          `json:"originalUrl" minLength:"1" maxLength:"2048" doc:"URL the HTML was fetched from"`
	Rebrand     *RebrandRequest `json:"rebrandInfo,omitempty" doc:"Optional rebranding"`
}
