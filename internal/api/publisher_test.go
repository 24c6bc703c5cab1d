package telegram

import (
	"context"
	"errors"
	"image"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/infrastructure/vision"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func figure() *entity.Figure {
	fig := &entity.Figure{Name: "0001TP_009900.png"}
	titles := []string{"Original", "GT label", "People (Baseline)\nDice=0.810", "People (Improved)\nDice=0.870", "Vehicle (Baseline)\nDice=0.740", "Vehicle (Improved)\nDice=0.790"}
	for _, title := range titles {
		fig.Panels = append(fig.Panels, entity.Panel{Title: title, Image: image.NewRGBA(image.Rect(0, 0, 8, 8))})
	}
	return fig
}

func TestCaption(t *testing.T) {
	require.Equal(t,
		"0001TP_009900.png\nPeople (Baseline): Dice=0.810\nPeople (Improved): Dice=0.870\nVehicle (Baseline): Dice=0.740\nVehicle (Improved): Dice=0.790",
		Caption(figure()))
}

func TestPublisher_Show(t *testing.T) {
	sender := &fakeSender{}
	p := NewPublisherWithSender(sender, 42, vision.CanvasOptions{PanelWidth: 16, Margin: 2})

	require.NoError(t, p.Show(context.Background(), figure()))
	require.Len(t, sender.sent, 1)

	photo, ok := sender.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	require.Equal(t, int64(42), photo.ChatID)
	require.Equal(t, Caption(figure()), photo.Caption)

	file, ok := photo.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	require.Equal(t, "0001TP_009900_comparison.png", file.Name)
	require.NotEmpty(t, file.Bytes)
}

func TestPublisher_SendError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPublisherWithSender(&fakeSender{err: boom}, 1, vision.DefaultCanvasOptions())
	require.ErrorIs(t, p.Show(context.Background(), figure()), boom)
}
