// Package telegram exposes the advisor as a Telegram bot.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pollTimeoutSeconds = 60

// Advisor answers chat messages.
type Advisor interface {
	Ask(ctx context.Context, query string) string
	Help() string
}

// botAPI is the subset of *tgbotapi.BotAPI the bot uses.
type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot long-polls Telegram and answers each text message.
type Bot struct {
	api     botAPI
	advisor Advisor
	logger  *zap.Logger
}

// Config holds bot configuration.
type Config struct {
	Token   string
	Advisor Advisor
	Logger  *zap.Logger
}

// New authorizes the token with Telegram and creates a Bot.
func New(cfg *Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := newBot(api, cfg.Advisor, cfg.Logger)
	b.logger.Info("telegram-bot-authorized", zap.String("username", api.Self.UserName))

	return b, nil
}

func newBot(api botAPI, advisor Advisor, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bot{
		api:     api,
		advisor: advisor,
		logger:  logger,
	}
}

// Run handles updates until ctx is cancelled or the update channel closes.
// Updates are handled one at a time.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram-bot-started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram-bot-stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				b.logger.Info("telegram-updates-closed")
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	var reply string
	switch msg.Command() {
	case "start", "help":
		MessagesTotal.WithLabelValues("command").Inc()
		reply = b.advisor.Help()
	default:
		MessagesTotal.WithLabelValues("query").Inc()
		reply = b.advisor.Ask(ctx, msg.Text)
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ReplyToMessageID = msg.MessageID

	_, err := b.api.Send(out)
	if err != nil {
		SendErrorsTotal.Inc()
		b.logger.Warn("telegram-send-failed",
			zap.Int64("chat-id", msg.Chat.ID),
			zap.Error(err))
		return
	}

	b.logger.Debug("telegram-replied",
		zap.Int64("chat-id", msg.Chat.ID),
		zap.Int("message-id", msg.MessageID))
}
