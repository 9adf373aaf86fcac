package note

// MessageKind identifies the media payload of an inbound message.
type MessageKind string

const (
	MessageAnimation MessageKind = "animation"
	MessageAudio     MessageKind = "audio"
	MessageDocument  MessageKind = "document"
	MessageLocation  MessageKind = "location"
	MessagePhoto     MessageKind = "photo"
	MessageText      MessageKind = "text"
	MessageVideo     MessageKind = "video"
	MessageVoice     MessageKind = "voice"

	// MessageOther covers every payload the bot does not capture
	// (stickers, contacts, polls and so on).
	MessageOther MessageKind = "other"
)

// Message is an inbound payload detached from the transport's types.
// Only the fields relevant to Kind are set.
type Message struct {
	Kind      MessageKind
	Text      string
	FileID    string
	Photos    []PhotoVariant
	Latitude  float64
	Longitude float64
}

// PhotoVariant is one resolution of the same image.
type PhotoVariant struct {
	FileID string
	Width  int
	Height int
}

// ContentFromMessage converts an inbound message into note content.
// A photo message carries several resolutions of the same image; the variant
// with the greatest (width, height) pair wins, width compared first.
func ContentFromMessage(m Message) (Content, error) {
	switch m.Kind {
	case MessageAnimation:
		return Animation{FileID: m.FileID}, nil
	case MessageAudio:
		return Audio{FileID: m.FileID}, nil
	case MessageDocument:
		return Document{FileID: m.FileID}, nil
	case MessageLocation:
		return Location{Latitude: m.Latitude, Longitude: m.Longitude}, nil
	case MessagePhoto:
		best, ok := largestPhoto(m.Photos)
		if !ok {
			return nil, ErrPhotoNotFound
		}
		return Photo{FileID: best.FileID}, nil
	case MessageText:
		return Text{Body: m.Text}, nil
	case MessageVideo:
		return Video{FileID: m.FileID}, nil
	case MessageVoice:
		return Voice{FileID: m.FileID}, nil
	default:
		return nil, ErrUnsupportedMessage
	}
}

func largestPhoto(variants []PhotoVariant) (PhotoVariant, bool) {
	if len(variants) == 0 {
		return PhotoVariant{}, false
	}
	best := variants[0]
	for _, v := range variants[1:] {
		if v.Width > best.Width || (v.Width == best.Width && v.Height > best.Height) {
			best = v
		}
	}
	return best, true
}
