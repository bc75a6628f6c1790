// Package telegram provides the Telegram transport: long polling, a worker
// pool over updates, inline keyboard navigation and HTML rendering of
// application results. The transport talks to the application only through
// the inbound ports.
package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/infrastructure/config"
	"github.com/medmarket/bot/internal/ports/inbound"
	"github.com/medmarket/bot/pkg/errors"
)

// Bot is the Telegram transport for the recipe and shop services.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      config.Config
	sessions *SessionStore
	logger   *zap.Logger

	search    inbound.RecipeSearch
	pricing   inbound.PriceComparison
	diary     inbound.Diary
	dietician inbound.Dietician
}

// NewBot creates the bot and authorizes against the Telegram API.
func NewBot(
	cfg config.Config,
	search inbound.RecipeSearch,
	pricing inbound.PriceComparison,
	diary inbound.Diary,
	dietician inbound.Dietician,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, errors.NewExternalServiceError("telegram", err)
	}
	api.Debug = cfg.Telegram.Debug

	logger = logger.Named("telegram")
	logger.Info("bot authorized", zap.String("username", api.Self.UserName))

	return &Bot{
		api:       api,
		cfg:       cfg,
		sessions:  NewSessionStore(),
		logger:    logger,
		search:    search,
		pricing:   pricing,
		diary:     diary,
		dietician: dietician,
	}, nil
}

// Start runs long polling until ctx is cancelled. Updates are handled by a
// fixed-size worker pool; ordering across users is not guaranteed and not
// needed.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.Telegram.UpdateTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	var wg sync.WaitGroup
	for i := 0; i < b.cfg.Telegram.WorkerPoolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case update, ok := <-updates:
					if !ok {
						return
					}
					b.handleUpdate(ctx, update)
				}
			}
		}()
	}

	<-ctx.Done()
	wg.Wait()
	return ctx.Err()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in update handler", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// send delivers an HTML message, logging delivery failures instead of
// propagating them: there is nobody upstream to handle a failed send.
func (b *Bot) send(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64) {
	b.send(chatID, "❌ Произошла ошибка. Попробуйте позже.", nil)
}
