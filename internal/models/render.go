package models

import "time"

// RenderRequest carries the two user inputs of a render.
type RenderRequest struct {
	URL     string `json:"url" form:"url"`
	Caption string `json:"caption" form:"caption"`
}

type RenderResult struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Version    int       `json:"version"`
	FileSize   int64     `json:"file_size"`
	RenderedAt time.Time `json:"rendered_at"`
	PNG        []byte    `json:"-"`
}

const (
	MimeTypePNG = "image/png"

	DefaultURL     = "https://outlook.office365.com/owa/calendar/LeafSpaceSpaceTide1@leaf.space/bookings/"
	DefaultCaption = "SCAN ME"
)
