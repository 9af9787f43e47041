package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/model"
	pkgLog "natural-event-scheduler/pkg/log"
	pkgResponse "natural-event-scheduler/pkg/response"
	pkgTelegram "natural-event-scheduler/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	bot         *pkgTelegram.Bot
	newWorkflow WorkflowFactory

	mu        sync.Mutex
	workflows *lru.Cache[int64, event.UseCase]
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects a reply within a few seconds, but a
// parse can legitimately take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// Detach from the HTTP request context, which is cancelled as soon as
		// the 200 goes out.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// workflow returns the chat's workflow, creating it (and recovering any
// persisted draft) on first contact.
func (h *handler) workflow(ctx context.Context, chatID int64) event.UseCase {
	h.mu.Lock()
	defer h.mu.Unlock()

	if uc, ok := h.workflows.Get(chatID); ok {
		return uc
	}
	uc := h.newWorkflow(chatID)
	if _, ok := uc.Recover(ctx); ok {
		h.l.Infof(ctx, "telegram handler: recovered draft for chat %d", chatID)
	}
	h.workflows.Add(chatID, uc)
	return uc
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	uc := h.workflow(ctx, msg.Chat.ID)

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		reply := "👋 Welcome! Describe an event in plain language and I'll draft it for your calendar.\n\n_Example: \"Lunch with Alex tomorrow at 1pm\"_\n\nWhen the preview looks right, send /save."
		if st := uc.State(); st.Phase == event.PhasePreview && st.Draft != nil {
			reply += "\n\nYou have an unfinished draft:\n\n" + formatDraft(st.Draft) + "\n\nSend /save to keep it or /cancel to discard it."
		}
		return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nSend one event per message, in any of the supported languages:\n`Dinner with Sam on Friday at 7pm`\n\nThen:\n• /save — add the previewed event to your calendar\n• /undo — remove a just-saved event\n• /cancel — discard the current draft",
			"Markdown",
		)
	case "/save":
		return h.handleSave(ctx, uc, msg)
	case "/undo":
		return h.handleUndo(ctx, uc, msg)
	case "/cancel":
		uc.Reset(ctx)
		return h.bot.SendMessage(msg.Chat.ID, "Draft discarded. Send me a new event whenever you're ready.")
	}

	return h.handleParse(ctx, uc, msg)
}

func (h *handler) handleParse(ctx context.Context, uc event.UseCase, msg *pkgTelegram.Message) error {
	if err := h.bot.SendMessage(msg.Chat.ID, "⏳ Working on it..."); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	sc := scopeFor(msg)
	st := uc.Parse(ctx, sc, msg.Text)

	switch st.Phase {
	case event.PhasePreview:
		reply := "Here's what I understood:\n\n" + formatDraft(st.Draft) + "\n\nSend /save to add it to your calendar, or /cancel to discard."
		return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
	case event.PhaseError:
		return h.bot.SendMessage(msg.Chat.ID, formatParseError(st.Err))
	default:
		// Blank input keeps the previous state; nothing to report.
		return nil
	}
}

func (h *handler) handleSave(ctx context.Context, uc event.UseCase, msg *pkgTelegram.Message) error {
	if uc.State().Phase != event.PhasePreview {
		return h.bot.SendMessage(msg.Chat.ID, "There's no draft to save. Send me an event first.")
	}

	st := uc.Save(ctx, scopeFor(msg))
	switch st.Phase {
	case event.PhaseSaved:
		reply := fmt.Sprintf("✅ Saved *%s* to your calendar.\n\nChanged your mind? Send /undo within the next few seconds.", escapeMarkdown(st.Draft.Title))
		return h.bot.SendMessageWithMode(msg.Chat.ID, reply, "Markdown")
	case event.PhaseError:
		return h.bot.SendMessage(msg.Chat.ID, formatParseError(st.Err))
	default:
		return nil
	}
}

func (h *handler) handleUndo(ctx context.Context, uc event.UseCase, msg *pkgTelegram.Message) error {
	st, err := uc.Undo(ctx, scopeFor(msg))
	switch {
	case errors.Is(err, event.ErrUndoUnavailable):
		return h.bot.SendMessage(msg.Chat.ID, "Nothing to undo — the undo window has closed or no event was just saved.")
	case err != nil:
		h.l.Errorf(ctx, "telegram handler: undo failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "Couldn't remove the event. It's still on your calendar; try /undo again.")
	case st.Phase == event.PhaseIdle:
		return h.bot.SendMessage(msg.Chat.ID, "↩️ Done, the event was removed from your calendar.")
	}
	return nil
}

func scopeFor(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}
