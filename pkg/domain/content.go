package domain

// AttachmentContentType is the binary media type that is never scanned.
const AttachmentContentType = "attachment"

// ContentStatusPublish is the only status considered by scans.
const ContentStatusPublish = "publish"

// ContentItem is a piece of host content. It is read-only to the scanner.
type ContentItem struct {
	ID          ContentID `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"contentType"`
	Status      string    `json:"status"`
	HTMLBody    string    `json:"htmlBody"`
	// MimeType and AltText are only set for attachments.
	MimeType string `json:"mimeType,omitempty"`
	AltText  string `json:"altText,omitempty"`
}

// ContentType describes a registered content type.
type ContentType struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Public bool   `json:"public"`
}

// QuickStats are cheap counters shown next to the report summary.
type QuickStats struct {
	// TotalContent is the number of published scannable items.
	TotalContent int `json:"total_content"`
	// ImagesWithoutAlt is the number of image attachments with no alt text.
	ImagesWithoutAlt int `json:"images_without_alt"`
}
