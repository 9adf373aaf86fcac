package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"github.com/ganot/notekeeper/internal/domain/note"
)

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  *tgbotapi.Message
		want note.Message
	}{
		{
			name: "text",
			msg:  &tgbotapi.Message{Text: "hello"},
			want: note.Message{Kind: note.MessageText, Text: "hello"},
		},
		{
			name: "audio",
			msg:  &tgbotapi.Message{Audio: &tgbotapi.Audio{FileID: "audio-1"}},
			want: note.Message{Kind: note.MessageAudio, FileID: "audio-1"},
		},
		{
			name: "document",
			msg:  &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "doc-1"}},
			want: note.Message{Kind: note.MessageDocument, FileID: "doc-1"},
		},
		{
			// Telegram sends a compatibility Document with every
			// animation; the animation must win.
			name: "animation with document",
			msg: &tgbotapi.Message{
				Animation: &tgbotapi.Animation{FileID: "anim-1"},
				Document:  &tgbotapi.Document{FileID: "doc-1"},
			},
			want: note.Message{Kind: note.MessageAnimation, FileID: "anim-1"},
		},
		{
			name: "location",
			msg:  &tgbotapi.Message{Location: &tgbotapi.Location{Latitude: 1.5, Longitude: 2.5}},
			want: note.Message{Kind: note.MessageLocation, Latitude: 1.5, Longitude: 2.5},
		},
		{
			name: "photo",
			msg: &tgbotapi.Message{Photo: []tgbotapi.PhotoSize{
				{FileID: "small", Width: 90, Height: 90},
				{FileID: "big", Width: 800, Height: 600},
			}},
			want: note.Message{Kind: note.MessagePhoto, Photos: []note.PhotoVariant{
				{FileID: "small", Width: 90, Height: 90},
				{FileID: "big", Width: 800, Height: 600},
			}},
		},
		{
			name: "video",
			msg:  &tgbotapi.Message{Video: &tgbotapi.Video{FileID: "video-1"}},
			want: note.Message{Kind: note.MessageVideo, FileID: "video-1"},
		},
		{
			name: "voice",
			msg:  &tgbotapi.Message{Voice: &tgbotapi.Voice{FileID: "voice-1"}},
			want: note.Message{Kind: note.MessageVoice, FileID: "voice-1"},
		},
		{
			name: "sticker",
			msg:  &tgbotapi.Message{Sticker: &tgbotapi.Sticker{FileID: "sticker-1"}},
			want: note.Message{Kind: note.MessageOther},
		},
		{
			name: "empty",
			msg:  &tgbotapi.Message{},
			want: note.Message{Kind: note.MessageOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeMessage(tt.msg))
		})
	}
}
