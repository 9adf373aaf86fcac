package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ganot/notekeeper/internal/domain/note"
)

// resultFromNote maps a note to the inline result shape its content variant
// calls for. The note id becomes the result id and the keywords display
// string becomes the visible title or caption.
func resultFromNote(n note.Note) interface{} {
	id := strconv.FormatInt(n.ID, 10)
	title := n.Keywords.String()

	switch c := n.Content.(type) {
	case note.Animation:
		result := tgbotapi.NewInlineQueryResultCachedGIF(id, c.FileID)
		result.Title = title
		return result
	case note.Audio:
		result := tgbotapi.NewInlineQueryResultCachedAudio(id, c.FileID)
		result.Caption = title
		return result
	case note.Document:
		return tgbotapi.NewInlineQueryResultCachedDocument(id, c.FileID, title)
	case note.Location:
		return tgbotapi.NewInlineQueryResultLocation(id, title, c.Latitude, c.Longitude)
	case note.Photo:
		result := tgbotapi.NewInlineQueryResultCachedPhoto(id, c.FileID)
		result.Title = title
		return result
	case note.Text:
		return tgbotapi.NewInlineQueryResultArticle(id, title, c.Body)
	case note.Video:
		return tgbotapi.NewInlineQueryResultCachedVideo(id, c.FileID, title)
	case note.Voice:
		return tgbotapi.NewInlineQueryResultCachedVoice(id, c.FileID, title)
	}

	// Content is a sealed set; a new variant must be handled above.
	return nil
}
