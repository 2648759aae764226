package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDeck lists available decks or switches the active one
func (h *Handler) handleDeck(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 || args[0] == "list" {
		names, err := h.vocab.List()
		if err != nil {
			h.logger.Error("Failed to list decks", zap.Error(err))
			return c.Send("Could not read the deck directory.")
		}
		if len(names) == 0 {
			return c.Send("No deck files found — the built-in deck is active.")
		}

		var sb strings.Builder
		sb.WriteString("📚 Available decks:\n\n")
		for i, name := range names {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
		}
		fmt.Fprintf(&sb, "\nActive: %s. Switch with /deck <name>.", h.vocab.ActiveDeck())
		return c.Send(sb.String())
	}

	name := args[0]
	if err := h.words.SwitchDeck(name); err != nil {
		if errors.Is(err, service.ErrUnknownDeck) {
			return c.Send(fmt.Sprintf("Unknown deck %q — see /deck list.", name))
		}
		h.logger.Error("Failed to switch deck", zap.Error(err), zap.String("deck", name))
		return c.Send("Could not switch the deck. Try again.")
	}

	return c.Send(fmt.Sprintf(
		"✅ Deck switched to %s (%d words). Seen history was reset.",
		name, h.vocab.Size(),
	))
}
