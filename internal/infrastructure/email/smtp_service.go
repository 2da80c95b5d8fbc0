package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"
)

// PaletteEmailData is everything needed to render and send one
// palette summary email
type PaletteEmailData struct {
	Email        string   `json:"email"`
	SeasonalType string   `json:"seasonal_type"` // e.g. "Light Spring"
	ColorHexes   []string `json:"color_hexes"`   // swatches shown in the email, max 6 rendered
	PaletteURL   string   `json:"palette_url"`
}

type EmailService interface {
	SendPaletteEmail(ctx context.Context, data PaletteEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendPaletteEmail(ctx context.Context, data PaletteEmailData) error {
	subject := fmt.Sprintf("Your %s Color Palette", data.SeasonalType)
	body := RenderPaletteEmail(data)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg)
	if err != nil {
		log.Error().
			Err(err).
			Str("to", data.Email).
			Str("smtp_addr", s.smtpAddr).
			Msg("Failed to send palette email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
