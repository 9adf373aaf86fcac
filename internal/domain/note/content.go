package note

import (
	"encoding/json"
	"fmt"
)

// Content is the closed set of payloads a note can hold. The unexported
// method seals the set so every consumer can type-switch over exactly these
// variants. Values are immutable once constructed.
type Content interface {
	contentType() string
}

// Animation is a GIF or short soundless video attachment.
type Animation struct {
	FileID string
}

// Audio is a music file attachment.
type Audio struct {
	FileID string
}

// Document is a generic file attachment.
type Document struct {
	FileID string
}

// Location is a point on the map.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Photo is a single image, already reduced to one resolution variant.
type Photo struct {
	FileID string
}

// Text is a plain text body.
type Text struct {
	Body string
}

// Video is a video file attachment.
type Video struct {
	FileID string
}

// Voice is a voice recording attachment.
type Voice struct {
	FileID string
}

const (
	typeAnimation = "animation"
	typeAudio     = "audio"
	typeDocument  = "document"
	typeLocation  = "location"
	typePhoto     = "photo"
	typeText      = "text"
	typeVideo     = "video"
	typeVoice     = "voice"
)

func (Animation) contentType() string { return typeAnimation }
func (Audio) contentType() string     { return typeAudio }
func (Document) contentType() string  { return typeDocument }
func (Location) contentType() string  { return typeLocation }
func (Photo) contentType() string     { return typePhoto }
func (Text) contentType() string      { return typeText }
func (Video) contentType() string     { return typeVideo }
func (Voice) contentType() string     { return typeVoice }

// contentDoc is the self-describing storage encoding of a Content value.
type contentDoc struct {
	Type      string   `json:"type"`
	FileID    string   `json:"file_id,omitempty"`
	Body      *string  `json:"body,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// EncodeContent serializes content to its storage document.
func EncodeContent(c Content) ([]byte, error) {
	var doc contentDoc
	switch v := c.(type) {
	case Animation:
		doc = contentDoc{Type: typeAnimation, FileID: v.FileID}
	case Audio:
		doc = contentDoc{Type: typeAudio, FileID: v.FileID}
	case Document:
		doc = contentDoc{Type: typeDocument, FileID: v.FileID}
	case Location:
		doc = contentDoc{Type: typeLocation, Latitude: &v.Latitude, Longitude: &v.Longitude}
	case Photo:
		doc = contentDoc{Type: typePhoto, FileID: v.FileID}
	case Text:
		doc = contentDoc{Type: typeText, Body: &v.Body}
	case Video:
		doc = contentDoc{Type: typeVideo, FileID: v.FileID}
	case Voice:
		doc = contentDoc{Type: typeVoice, FileID: v.FileID}
	default:
		return nil, fmt.Errorf("encode content: unknown variant %T", c)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return data, nil
}

// DecodeContent parses a storage document back into content.
func DecodeContent(data []byte) (Content, error) {
	var doc contentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	switch doc.Type {
	case typeAnimation:
		return Animation{FileID: doc.FileID}, nil
	case typeAudio:
		return Audio{FileID: doc.FileID}, nil
	case typeDocument:
		return Document{FileID: doc.FileID}, nil
	case typeLocation:
		var loc Location
		if doc.Latitude != nil {
			loc.Latitude = *doc.Latitude
		}
		if doc.Longitude != nil {
			loc.Longitude = *doc.Longitude
		}
		return loc, nil
	case typePhoto:
		return Photo{FileID: doc.FileID}, nil
	case typeText:
		var text Text
		if doc.Body != nil {
			text.Body = *doc.Body
		}
		return text, nil
	case typeVideo:
		return Video{FileID: doc.FileID}, nil
	case typeVoice:
		return Voice{FileID: doc.FileID}, nil
	default:
		return nil, fmt.Errorf("decode content: unknown type %q", doc.Type)
	}
}
