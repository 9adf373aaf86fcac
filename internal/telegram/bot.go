// Package telegram adapts Telegram updates to the note and dialogue
// domains: it routes commands, drives the capture dialogue, answers inline
// queries and renders list chunks. Everything domain-shaped lives below it;
// this package only translates.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/ganot/notekeeper/internal/domain/dialogue"
	"github.com/ganot/notekeeper/internal/domain/note"
	"github.com/ganot/notekeeper/internal/repository"
)

const (
	replyNoItems       = "There are no items"
	replyCancelled     = "Cancelled"
	replyRemoveOK      = "OK"
	replyRemoveMissing = "Not found"
	replyIDRequired    = "Note ID is required"
	replyIDNotInteger  = "Note ID is not an integer"
)

// Bot routes Telegram updates to the note handlers.
type Bot struct {
	api      *tgbotapi.BotAPI
	notes    *note.Service
	sessions repository.SessionStore
	gate     *Gate
	timeout  int
	logger   *slog.Logger
}

// New creates a bot on top of an authorized API client.
func New(
	api *tgbotapi.BotAPI,
	notes *note.Service,
	sessions repository.SessionStore,
	gate *Gate,
	pollTimeout int,
	logger *slog.Logger,
) *Bot {
	return &Bot{
		api:      api,
		notes:    notes,
		sessions: sessions,
		gate:     gate,
		timeout:  pollTimeout,
		logger:   logger,
	}
}

// Run consumes long-poll updates until ctx is canceled. Each update is an
// independent unit of work: a failed one is logged and the loop moves on.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.timeout
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	logger := b.logger.With("trace", uuid.NewString())

	switch {
	case update.InlineQuery != nil:
		query := update.InlineQuery
		if !b.gate.Allows(query.From.ID) {
			logger.Warn("inline query from unknown user", "user", query.From.ID)
			return
		}
		if err := b.handleInlineQuery(ctx, query); err != nil {
			logger.Error("inline query failed", "user", query.From.ID, "error", err)
		}
	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || !b.gate.Allows(msg.From.ID) {
			return
		}
		if err := b.handleMessage(ctx, msg); err != nil {
			logger.Error("message handling failed", "chat", msg.Chat.ID, "error", err)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.IsCommand() {
		switch msg.Command() {
		case "add":
			state, err := b.loadState(ctx, msg.Chat.ID)
			if err != nil {
				return err
			}
			return b.continueDialogue(ctx, msg, state)
		case "cancel":
			return b.cancelDialogue(ctx, msg)
		case "list":
			return b.handleList(ctx, msg)
		case "remove":
			return b.handleRemove(ctx, msg)
		}
		return nil
	}

	// A plain message only means something while a capture dialogue is in
	// progress for the chat.
	state, err := b.sessions.Get(ctx, msg.Chat.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return b.continueDialogue(ctx, msg, state)
}

func (b *Bot) loadState(ctx context.Context, chatID int64) (dialogue.State, error) {
	state, err := b.sessions.Get(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		return dialogue.State{}, nil
	}
	return state, err
}

// continueDialogue applies one dialogue transition: persist the note if the
// transition completed, then the new state, then the reply. A reply that
// fails after the state was stored leaves the dialogue in the new state;
// the next message simply continues from there.
func (b *Bot) continueDialogue(ctx context.Context, msg *tgbotapi.Message, state dialogue.State) error {
	result := dialogue.Advance(state, normalizeMessage(msg))

	if result.Save != nil {
		if err := b.notes.Create(ctx, *result.Save); err != nil {
			return err
		}
	}

	if result.Done {
		if err := b.sessions.Clear(ctx, msg.Chat.ID); err != nil {
			return err
		}
	} else {
		if err := b.sessions.Set(ctx, msg.Chat.ID, result.Next); err != nil {
			return err
		}
	}

	return b.send(tgbotapi.NewMessage(msg.Chat.ID, result.Reply))
}

func (b *Bot) cancelDialogue(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.sessions.Clear(ctx, msg.Chat.ID); err != nil {
		return err
	}
	return b.send(tgbotapi.NewMessage(msg.Chat.ID, replyCancelled))
}

func (b *Bot) handleList(ctx context.Context, msg *tgbotapi.Message) error {
	pager, err := b.notes.List(ctx)
	if err != nil {
		return err
	}

	sent := false
	for {
		chunk, ok := pager.Next()
		if !ok {
			break
		}
		out := tgbotapi.NewMessage(msg.Chat.ID, chunk)
		out.ParseMode = tgbotapi.ModeMarkdownV2
		if err := b.send(out); err != nil {
			return err
		}
		sent = true
	}

	if !sent {
		return b.send(tgbotapi.NewMessage(msg.Chat.ID, replyNoItems))
	}
	return nil
}

func (b *Bot) handleRemove(ctx context.Context, msg *tgbotapi.Message) error {
	var reply string
	args := strings.Fields(msg.CommandArguments())
	switch {
	case len(args) == 0:
		reply = replyIDRequired
	default:
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			reply = replyIDNotInteger
			break
		}
		removed, err := b.notes.Remove(ctx, id)
		if err != nil {
			return err
		}
		if removed {
			reply = replyRemoveOK
		} else {
			reply = replyRemoveMissing
		}
	}
	return b.send(tgbotapi.NewMessage(msg.Chat.ID, reply))
}

func (b *Bot) handleInlineQuery(ctx context.Context, query *tgbotapi.InlineQuery) error {
	keywords := note.SplitKeywords(query.Query)
	notes, err := b.notes.Search(ctx, keywords)
	if err != nil {
		return err
	}

	results := make([]interface{}, 0, len(notes))
	for _, n := range notes {
		if result := resultFromNote(n); result != nil {
			results = append(results, result)
		}
	}

	if _, err := b.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: query.ID,
		Results:       results,
	}); err != nil {
		return fmt.Errorf("answering inline query: %w", err)
	}
	return nil
}

func (b *Bot) send(msg tgbotapi.MessageConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
