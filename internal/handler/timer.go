package handler

import (
	"fmt"
	"strings"

	"wordtrainer/internal/service"

	tele "gopkg.in/telebot.v3"
)

// handleTimer configures or cancels the periodic study reminder
func (h *Handler) handleTimer(c tele.Context) error {
	spec := strings.TrimSpace(strings.Join(c.Args(), " "))
	if spec == "" {
		return c.Send(`Usage: /timer <interval|cancel> — e.g. "one day", "2 hours", "30 minutes" or a bare minute count.`)
	}

	if spec == "cancel" {
		h.reminder.Cancel()
		return c.Send("⏰ Reminder cancelled.")
	}

	chat := c.Chat()
	interval := service.ParseInterval(spec)
	h.reminder.Set(interval, func(text string) error {
		_, err := h.bot.Send(chat, text)
		return err
	})

	return c.Send(fmt.Sprintf("⏰ Reminder set to every %s.", interval))
}
