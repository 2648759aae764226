package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// randomReviewSize caps a random review at 10 words
const randomReviewSize = 10

const reviewUsage = `Usage: /review <mode> <type> [date]
mode: 1 word→translation, 2 translation→word, 3 sentence
type: 1 latest group (or the group for [date]), 2 random from history`

// parseMode maps a /review mode argument to a quiz mode
func parseMode(arg string) (domain.Mode, bool) {
	switch arg {
	case "1":
		return domain.ModeEnToCn, true
	case "2":
		return domain.ModeCnToEn, true
	case "3":
		return domain.ModeSentence, true
	default:
		return domain.ModeNone, false
	}
}

// handleReview begins a review session and replies with the prompts
func (h *Handler) handleReview(c tele.Context) error {
	args := c.Args()
	if len(args) < 2 {
		return c.Send(reviewUsage)
	}

	mode, ok := parseMode(args[0])
	if !ok {
		return c.Send(reviewUsage)
	}

	var words []string
	switch args[1] {
	case "1":
		if len(args) > 2 {
			date := args[2]
			if !domain.ValidDateKey(date) {
				return c.Send("Dates must look like YYYY-MM-DD.")
			}
			words = h.words.Group(date)
			if len(words) == 0 {
				return c.Send(fmt.Sprintf("No word group found for %s.", date))
			}
		} else {
			words = h.words.Latest()
			if len(words) == 0 {
				return c.Send("No word groups yet — draw some words with /words first.")
			}
		}
	case "2":
		words = h.words.RandomSeen(randomReviewSize)
		if len(words) == 0 {
			return c.Send("No seen words yet — draw some words with /words first.")
		}
	default:
		return c.Send(reviewUsage)
	}

	prompts, err := h.review.Begin(mode, words)
	if err != nil {
		h.logger.Error("Failed to begin review", zap.Error(err))
		return c.Send("Could not start the review. Try again.")
	}

	var sb strings.Builder
	switch mode {
	case domain.ModeCnToEn:
		sb.WriteString("🔁 Write the word for each translation:\n\n")
	case domain.ModeSentence:
		sb.WriteString("🔁 Give the translation of each **wrapped** word:\n\n")
	default:
		sb.WriteString("🔁 Give the translation of each word:\n\n")
	}
	sb.WriteString(strings.Join(prompts, "\n"))
	fmt.Fprintf(&sb, "\n\nAnswer with /verify followed by %d answers in order.", len(words))

	return c.Send(sb.String())
}

// handleVerify grades the pending review session
func (h *Handler) handleVerify(c tele.Context) error {
	result, err := h.review.Verify(c.Args())
	if err != nil {
		var countErr service.ErrAnswerCount
		switch {
		case errors.Is(err, service.ErrNoSession):
			return c.Send("No review in progress — start one with /review.")
		case errors.As(err, &countErr):
			return c.Send(fmt.Sprintf(
				"This review needs %d answers, you sent %d. Nothing was graded.",
				countErr.Expected, countErr.Got,
			))
		default:
			h.logger.Error("Failed to verify answers", zap.Error(err))
			return c.Send("Could not grade the answers. Try again.")
		}
	}

	var sb strings.Builder
	for _, v := range result.Verdicts {
		if v.Correct {
			fmt.Fprintf(&sb, "%d. ✅\n", v.Position)
		} else {
			fmt.Fprintf(&sb, "%d. ❌ correct answer: %s\n", v.Position, v.Expected)
		}
	}
	fmt.Fprintf(&sb, "\nScore: %d/%d", result.Correct, result.Total)
	if result.AllCorrect() {
		sb.WriteString("\n🎉 Perfect! Keep it up!")
	}

	return c.Send(sb.String())
}
