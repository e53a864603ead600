package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/PuerkitoBio/goquery"
	tc "github.com/Roma7-7-7/telegram"
	tb "gopkg.in/telebot.v3"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . Sender,TextSender

// CaptionLimit is the maximum visible length of a photo caption in UTF-16 code units.
const CaptionLimit = 1024

// Sender is implemented by *tb.Bot.
type Sender interface {
	Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error)
}

// TextSender delivers plain text messages.
type TextSender interface {
	SendMessage(ctx context.Context, chatID, msg string) error
}

type channel string

func (c channel) Recipient() string {
	return string(c)
}

// ChannelNotifier posts schedule messages to a Telegram channel.
type ChannelNotifier struct {
	bot       Sender
	fallback  TextSender
	channelID string

	log *slog.Logger
}

// NewBot creates a send-only bot. No updates are polled.
func NewBot(token string) (*tb.Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

// NewChannelNotifier creates a notifier. fallback may be nil.
func NewChannelNotifier(bot Sender, fallback TextSender, channelID string, log *slog.Logger) *ChannelNotifier {
	return &ChannelNotifier{
		bot:       bot,
		fallback:  fallback,
		channelID: channelID,
		log:       log.With("component", "telegram").With("channel", channelID),
	}
}

// Notify sends text as an HTML photo caption. Captions longer than
// CaptionLimit go out as a photo followed by a separate message. With an empty
// imageURL only the text is sent. When the HTML delivery fails the text is
// sent once more without markup through the fallback sender.
func (n *ChannelNotifier) Notify(ctx context.Context, text, imageURL string) error {
	err := n.send(text, imageURL)
	if err == nil {
		return nil
	}
	if n.fallback == nil {
		return err
	}

	n.log.WarnContext(ctx, "Failed to send HTML message, sending plain text", "error", err)
	if fbErr := n.fallback.SendMessage(ctx, n.channelID, PlainText(text)); fbErr != nil {
		if errors.Is(fbErr, tc.ErrForbidden) {
			n.log.ErrorContext(ctx, "Bot has no access to the channel")
		}
		return errors.Join(err, fmt.Errorf("send plain text: %w", fbErr))
	}
	return nil
}

func (n *ChannelNotifier) send(text, imageURL string) error {
	to := channel(n.channelID)
	html := &tb.SendOptions{ParseMode: tb.ModeHTML}

	if imageURL == "" {
		if _, err := n.bot.Send(to, text, html); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
		return nil
	}

	if VisibleLength(text) <= CaptionLimit {
		photo := &tb.Photo{File: tb.FromURL(imageURL), Caption: text}
		if _, err := n.bot.Send(to, photo, html); err != nil {
			return fmt.Errorf("send photo: %w", err)
		}
		return nil
	}

	n.log.Debug("Caption is too long, sending photo and text separately", "length", VisibleLength(text))
	if _, err := n.bot.Send(to, &tb.Photo{File: tb.FromURL(imageURL)}); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	if _, err := n.bot.Send(to, text, html); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// PlainText strips HTML markup and decodes entities.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}

// VisibleLength is the length Telegram counts for a message after markup is applied.
func VisibleLength(html string) int {
	return len(utf16.Encode([]rune(PlainText(html))))
}
