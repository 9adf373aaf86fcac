package note

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentFromMessage_SupportedKinds(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want Content
	}{
		{
			name: "animation",
			msg:  Message{Kind: MessageAnimation, FileID: "anim-1"},
			want: Animation{FileID: "anim-1"},
		},
		{
			name: "audio",
			msg:  Message{Kind: MessageAudio, FileID: "audio-1"},
			want: Audio{FileID: "audio-1"},
		},
		{
			name: "document",
			msg:  Message{Kind: MessageDocument, FileID: "doc-1"},
			want: Document{FileID: "doc-1"},
		},
		{
			name: "location",
			msg:  Message{Kind: MessageLocation, Latitude: 59.93, Longitude: 30.31},
			want: Location{Latitude: 59.93, Longitude: 30.31},
		},
		{
			name: "text",
			msg:  Message{Kind: MessageText, Text: "hello"},
			want: Text{Body: "hello"},
		},
		{
			name: "video",
			msg:  Message{Kind: MessageVideo, FileID: "video-1"},
			want: Video{FileID: "video-1"},
		},
		{
			name: "voice",
			msg:  Message{Kind: MessageVoice, FileID: "voice-1"},
			want: Voice{FileID: "voice-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContentFromMessage(tt.msg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestContentFromMessage_PhotoPicksLargestVariant(t *testing.T) {
	msg := Message{
		Kind: MessagePhoto,
		Photos: []PhotoVariant{
			{FileID: "small", Width: 100, Height: 100},
			{FileID: "wide", Width: 200, Height: 150},
			{FileID: "large", Width: 200, Height: 200},
		},
	}

	got, err := ContentFromMessage(msg)
	require.NoError(t, err)
	require.Equal(t, Photo{FileID: "large"}, got)
}

func TestContentFromMessage_PhotoWithoutVariants(t *testing.T) {
	_, err := ContentFromMessage(Message{Kind: MessagePhoto})
	require.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestContentFromMessage_Unsupported(t *testing.T) {
	_, err := ContentFromMessage(Message{Kind: MessageOther})
	require.ErrorIs(t, err, ErrUnsupportedMessage)
}

func TestContentRoundTrip(t *testing.T) {
	contents := []Content{
		Animation{FileID: "anim-1"},
		Location{Latitude: -33.86, Longitude: 151.2},
		Photo{FileID: "photo-1"},
		Text{Body: "remember the milk"},
		Text{Body: ""},
		Voice{FileID: "voice-1"},
	}

	for _, want := range contents {
		data, err := EncodeContent(want)
		require.NoError(t, err)

		got, err := DecodeContent(data)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeContent_UnknownType(t *testing.T) {
	_, err := DecodeContent([]byte(`{"type":"sticker","file_id":"x"}`))
	require.Error(t, err)
}

func TestDecodeContent_Garbage(t *testing.T) {
	_, err := DecodeContent([]byte(`not json`))
	require.Error(t, err)
}
