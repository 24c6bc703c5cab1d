package telegram

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
	"maskcompare/internal/infrastructure/vision"
)

// Sender часть tgbotapi.BotAPI, нужная для отправки фото
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Publisher отправляет фигуры в Telegram-чат
type Publisher struct {
	api    Sender
	chatID int64
	opts   vision.CanvasOptions
}

// NewPublisher авторизуется по токену и создаёт публикатор.
func NewPublisher(token string, chatID int64, opts vision.CanvasOptions) (*Publisher, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "telegram auth")
	}
	return NewPublisherWithSender(api, chatID, opts), nil
}

// NewPublisherWithSender создаёт публикатор поверх готового клиента.
func NewPublisherWithSender(api Sender, chatID int64, opts vision.CanvasOptions) *Publisher {
	return &Publisher{api: api, chatID: chatID, opts: opts}
}

// Show рисует фигуру и отправляет её фотографией с подписью.
func (p *Publisher) Show(ctx context.Context, fig *entity.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	canvas, err := vision.RenderCanvas(fig, p.opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return errors.Wrap(err, "encode figure")
	}

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FileBytes{
		Name:  photoName(fig),
		Bytes: buf.Bytes(),
	})
	photo.Caption = Caption(fig)

	if _, err := p.api.Send(photo); err != nil {
		return errors.Wrap(err, "send figure")
	}
	return nil
}

// Caption подпись к фото: имя изображения и Dice-заголовки панелей.
func Caption(fig *entity.Figure) string {
	var b strings.Builder
	b.WriteString(fig.Name)
	for _, p := range fig.Panels {
		if !strings.Contains(p.Title, "\n") {
			continue
		}
		fmt.Fprintf(&b, "\n%s", strings.ReplaceAll(p.Title, "\n", ": "))
	}
	return b.String()
}

func photoName(fig *entity.Figure) string {
	base := filepath.Base(fig.Name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_comparison.png"
}

// Проверка реализации интерфейса
var _ port.FigureDisplay = (*Publisher)(nil)
