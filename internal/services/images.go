package services

import (
	"strings"
)

// ImageURLResolver rewrites stored image references into absolute URLs.
// The database holds a mix of forms accumulated over time: full URLs,
// "/uploads/..." paths, "uploads/..." paths and bare filenames.
type ImageURLResolver struct {
	SiteBaseURL    string
	UploadsBaseURL string
}

func NewImageURLResolver(siteBaseURL, uploadsBaseURL string) ImageURLResolver {
	siteBaseURL = strings.TrimSuffix(siteBaseURL, "/")
	if uploadsBaseURL == "" {
		uploadsBaseURL = siteBaseURL + "/uploads"
	}
	return ImageURLResolver{
		SiteBaseURL:    siteBaseURL,
		UploadsBaseURL: strings.TrimSuffix(uploadsBaseURL, "/"),
	}
}

// Resolve maps one stored reference to an absolute URL. Empty input yields
// an empty string.
func (r ImageURLResolver) Resolve(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"):
		return s
	case strings.HasPrefix(s, "/uploads/"):
		return r.SiteBaseURL + s
	case strings.HasPrefix(s, "uploads/"):
		return r.SiteBaseURL + "/" + s
	default:
		// Bare filename.
		return r.UploadsBaseURL + "/" + s
	}
}

// ResolveList normalizes every entry, drops blank ones and re-indexes the
// slice so the frontend always sees a contiguous gallery.
func (r ImageURLResolver) ResolveList(raw []string) []string {
	images := make([]string, 0, len(raw))
	for _, item := range raw {
		if resolved := r.Resolve(item); resolved != "" {
			images = append(images, resolved)
		}
	}
	return images
}

// CoverImage picks the representative image for list views. An explicitly
// stored cover wins (normalized independently, it may point outside the
// gallery); otherwise the first gallery image is used.
func (r ImageURLResolver) CoverImage(stored string, images []string) string {
	if cover := r.Resolve(stored); cover != "" {
		return cover
	}
	if len(images) > 0 {
		return images[0]
	}
	return ""
}
