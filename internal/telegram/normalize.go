package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ganot/notekeeper/internal/domain/note"
)

// normalizeMessage detaches an inbound Telegram message from the transport's
// types. Animation is checked before Document because Telegram attaches a
// backward-compatibility Document to every animation message. Payload kinds
// the bot does not capture map to note.MessageOther.
func normalizeMessage(msg *tgbotapi.Message) note.Message {
	switch {
	case msg.Animation != nil:
		return note.Message{Kind: note.MessageAnimation, FileID: msg.Animation.FileID}
	case msg.Audio != nil:
		return note.Message{Kind: note.MessageAudio, FileID: msg.Audio.FileID}
	case msg.Document != nil:
		return note.Message{Kind: note.MessageDocument, FileID: msg.Document.FileID}
	case msg.Location != nil:
		return note.Message{
			Kind:      note.MessageLocation,
			Latitude:  msg.Location.Latitude,
			Longitude: msg.Location.Longitude,
		}
	case msg.Photo != nil:
		variants := make([]note.PhotoVariant, 0, len(msg.Photo))
		for _, p := range msg.Photo {
			variants = append(variants, note.PhotoVariant{
				FileID: p.FileID,
				Width:  p.Width,
				Height: p.Height,
			})
		}
		return note.Message{Kind: note.MessagePhoto, Photos: variants}
	case msg.Video != nil:
		return note.Message{Kind: note.MessageVideo, FileID: msg.Video.FileID}
	case msg.Voice != nil:
		return note.Message{Kind: note.MessageVoice, FileID: msg.Voice.FileID}
	case msg.Text != "":
		return note.Message{Kind: note.MessageText, Text: msg.Text}
	default:
		return note.Message{Kind: note.MessageOther}
	}
}
