package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation requested*\n\n"+"Vehicle: %s %s\n"+"Dates: %s — %s\n"+"Quantity: %d\n"+"Awaiting vendor approval.",
		vehicle.Brand, vehicle.Name,
		res.StartDate.Format(domain.DayFormat), res.EndDate.Format(domain.DayFormat),
		res.Quantity,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationApproved(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation approved!*\n\n"+"Vehicle: %s %s\n"+"Dates: %s — %s\n"+"Total: %.2f",
		vehicle.Brand, vehicle.Name,
		res.StartDate.Format(domain.DayFormat), res.EndDate.Format(domain.DayFormat),
		res.TotalPrice,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationRejected(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation rejected*\n\n"+"Vehicle: %s %s\n"+"Dates: %s — %s",
		vehicle.Brand, vehicle.Name,
		res.StartDate.Format(domain.DayFormat), res.EndDate.Format(domain.DayFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Vehicle: %s %s\n"+"Dates: %s — %s",
		vehicle.Brand, vehicle.Name,
		res.StartDate.Format(domain.DayFormat), res.EndDate.Format(domain.DayFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
