// Package telegram содержит отправку отчетов о запусках в Telegram.
package telegram

import (
	"context"
	"fmt"

	"weatherscraper/formatter"
	"weatherscraper/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Client отправляет отчеты о проходах в один чат
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewClient создает клиент Telegram
func NewClient(botToken string, chatID int64, logger *zap.Logger) (*Client, error) {
	return NewClientWithEndpoint(botToken, chatID, tgbotapi.APIEndpoint, logger)
}

// NewClientWithEndpoint создает клиент с нестандартным адресом Bot API
func NewClientWithEndpoint(botToken string, chatID int64, endpoint string, logger *zap.Logger) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("chat id is required")
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(botToken, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false
	logger.Info("Telegram bot created", zap.String("username", bot.Self.UserName))

	return &Client{
		bot:    bot,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Notify отправляет отчет о результате прохода
func (c *Client) Notify(_ context.Context, summary *model.RunSummary, runErr error) error {
	return c.SendMessage(formatter.FormatRunReport(summary, runErr))
}

// SendMessage отправляет сообщение
func (c *Client) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		c.logger.Error("Failed to send message", zap.Int64("chat_id", c.chatID), zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
