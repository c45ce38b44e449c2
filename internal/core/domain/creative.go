package domain

import "strings"

// CreativeMode tells the two creative variants apart.
type CreativeMode string

const (
	ModeImage  CreativeMode = "image"
	ModeScript CreativeMode = "script"
)

// Creative is the payload of a campaign: either an ImageCreative or a
// ScriptCreative. Footer fields are only meaningful for combo bookings.
type Creative interface {
	Mode() CreativeMode
	// ForFooter returns the creative shown when a combo booking is served
	// in the footer slot.
	ForFooter() Creative
	// Primary strips the footer fields.
	Primary() Creative
	isCreative()
}

// ImageCreative is an image (or video) banner with an optional mobile
// variant. Video is detected by file extension at render time.
type ImageCreative struct {
	ImageURL             string `json:"imageUrl,omitempty"`
	MobileImageURL       string `json:"mobileImageUrl,omitempty"`
	FooterImageURL       string `json:"footerImageUrl,omitempty"`
	FooterMobileImageURL string `json:"footerMobileImageUrl,omitempty"`
}

func (ImageCreative) Mode() CreativeMode { return ModeImage }
func (ImageCreative) isCreative()        {}

// ForFooter substitutes the footer images, keeping the primary ones where
// no footer image was supplied.
func (c ImageCreative) ForFooter() Creative {
	out := ImageCreative{ImageURL: c.ImageURL, MobileImageURL: c.MobileImageURL}
	if c.FooterImageURL != "" {
		out.ImageURL = c.FooterImageURL
	}
	if c.FooterMobileImageURL != "" {
		out.MobileImageURL = c.FooterMobileImageURL
	}
	return out
}

func (c ImageCreative) Primary() Creative {
	return ImageCreative{ImageURL: c.ImageURL, MobileImageURL: c.MobileImageURL}
}

// ScriptCreative is third-party markup, typically an ad network tag.
type ScriptCreative struct {
	Script             string `json:"script"`
	MobileScript       string `json:"mobileScript,omitempty"`
	FooterScript       string `json:"footerScript,omitempty"`
	FooterMobileScript string `json:"footerMobileScript,omitempty"`
}

func (ScriptCreative) Mode() CreativeMode { return ModeScript }
func (ScriptCreative) isCreative()        {}

// ForFooter swaps in the footer scripts. Unlike images there is no
// fallback to the header script.
func (c ScriptCreative) ForFooter() Creative {
	return ScriptCreative{Script: c.FooterScript, MobileScript: c.FooterMobileScript}
}

func (c ScriptCreative) Primary() Creative {
	return ScriptCreative{Script: c.Script, MobileScript: c.MobileScript}
}

// IsVideoURL reports whether an asset URL points to a video file.
func IsVideoURL(u string) bool {
	l := strings.ToLower(u)
	return strings.HasSuffix(l, ".mp4") || strings.HasSuffix(l, ".webm")
}
