package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"salescrm/internal/models"
)

type DigestNotifier interface {
	SendKPIDigest(kpis *models.OverallKPIs) error
}

// TelegramNotifier pushes KPI digests to a configured chat. A nil notifier
// or an unset chat is a silent no-op so the feature can stay switched off.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) SendKPIDigest(kpis *models.OverallKPIs) error {
	if t == nil || t.bot == nil || t.chatID == 0 {
		log.Printf("[tg][skip] notifier not configured")
		return nil
	}

	text := fmt.Sprintf(
		"<b>Sales KPI digest</b>\nDeals: %d\nTotal value: %.2f\nWin rate: %.2f%%\nAvg deal size: %.2f",
		kpis.TotalDeals, kpis.TotalValue, kpis.WinRate, kpis.AverageDealSize,
	)
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	log.Printf("[tg][send] chatID=%d", t.chatID)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send digest: %w", err)
	}
	return nil
}
