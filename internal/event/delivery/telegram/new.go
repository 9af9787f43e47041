package telegram

import (
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"natural-event-scheduler/internal/event"
	pkgLog "natural-event-scheduler/pkg/log"
	pkgTelegram "natural-event-scheduler/pkg/telegram"
)

// workflowCacheSize bounds the number of concurrently tracked chats. An
// evicted chat loses only its in-memory state; the persisted draft is
// recovered when the chat comes back.
const workflowCacheSize = 256

// WorkflowFactory builds a fresh workflow for one chat.
type WorkflowFactory func(chatID int64) event.UseCase

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates the Telegram delivery handler. Each chat gets its own workflow
// instance, held in an LRU cache keyed by chat ID.
func New(
	l pkgLog.Logger,
	bot *pkgTelegram.Bot,
	newWorkflow WorkflowFactory,
) (Handler, error) {
	workflows, err := lru.New[int64, event.UseCase](workflowCacheSize)
	if err != nil {
		return nil, err
	}
	return &handler{
		l:           l,
		bot:         bot,
		newWorkflow: newWorkflow,
		workflows:   workflows,
	}, nil
}
