package handler

import (
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	vocab    *service.VocabService
	words    *service.WordService
	review   *service.ReviewService
	reminder *service.ReminderService
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	vocab *service.VocabService,
	words *service.WordService,
	review *service.ReviewService,
	reminder *service.ReminderService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		vocab:    vocab,
		words:    words,
		review:   review,
		reminder: reminder,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleHelp)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/words", h.handleWords)
	h.bot.Handle("/review", h.handleReview)
	h.bot.Handle("/verify", h.handleVerify)
	h.bot.Handle("/deck", h.handleDeck)
	h.bot.Handle("/clear", h.handleClear)
	h.bot.Handle("/timer", h.handleTimer)
}

const helpText = `📖 Word Trainer

/words [count] — draw new words to study (at least 10)
/review <mode> <type> [date] — start a review
    mode: 1 word→translation, 2 translation→word, 3 sentence
    type: 1 latest group (or the group for [date]), 2 random from history
/verify <answers...> — grade the pending review
/deck <name|list> — switch the active deck or list available decks
/clear — wipe word groups and seen history
/timer <interval|cancel> — periodic study reminder ("one day", "2 hours", "30 minutes")
/help — this text`

// handleHelp replies with the static command reference
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(helpText)
}
