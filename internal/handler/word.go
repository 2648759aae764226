package handler

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// minWordCount is the smallest batch a /words command draws
const minWordCount = 10

// handleWords draws a batch of unseen words, journals them under
// today's date and echoes them with translations
func (h *Handler) handleWords(c tele.Context) error {
	count := minWordCount
	if args := c.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return c.Send("Usage: /words [count] — count must be a number.")
		}
		count = n
	}
	if count < minWordCount {
		count = minWordCount
	}

	selected, err := h.words.SelectUnseen(count)
	if err != nil {
		h.logger.Error("Failed to select words", zap.Error(err))
		return c.Send("Could not draw words: the active deck is empty.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 Your words (%d):\n\n", len(selected))
	for i, w := range selected {
		fmt.Fprintf(&sb, "%d. %s — %s\n", i+1, w, h.vocab.Translation(w))
	}
	sb.WriteString("\nReview them later with /review.")

	return c.Send(sb.String())
}

// handleClear wipes the word-group journal and the seen history
func (h *Handler) handleClear(c tele.Context) error {
	if err := h.words.Clear(); err != nil {
		h.logger.Error("Failed to clear word state", zap.Error(err))
	}
	return c.Send("🧹 Word groups and seen history cleared.")
}
