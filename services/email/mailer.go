package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	"mentorhub/config"
	"mentorhub/models"
	"mentorhub/utils"
)

// Mailer sends booking-related emails. Sends are best-effort; the booking
// flow never fails on a mailer error.
type Mailer interface {
	SendBookingEmail(ctx context.Context, msg models.BookingEmail) error
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES;
// "noop" or unknown uses a no-op mailer that only logs.
func NewMailer() Mailer {
	cfg := config.AppConfig
	switch cfg.EmailProvider {
	case "ses":
		awsCfg := aws.Config{
			Region: cfg.AWSRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: cfg.EmailFromAddress,
			fromName:    cfg.EmailFromName,
		}
	default:
		utils.GetLogger().Info("email: using noop mailer", zap.String("provider", cfg.EmailProvider))
		return &noopMailer{}
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) SendBookingEmail(ctx context.Context, msg models.BookingEmail) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}

	subject := fmt.Sprintf("Session with %s on %s", msg.MentorName, msg.StartsAt.Format("Jan 2, 15:04"))
	body := fmt.Sprintf(
		"Hi %s,\n\nYour mentorship session with %s is requested for %s (%d minutes).\nTotal: %.2f\n\nYou'll get another email once the mentor confirms.\n",
		msg.RecipientName, msg.MentorName, msg.StartsAt.Format("Monday, Jan 2 at 15:04"), msg.DurationMins, msg.FinalPrice,
	)
	if msg.Topic != "" {
		body += fmt.Sprintf("\nTopic: %s\n", msg.Topic)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.RecipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}
	return nil
}

type noopMailer struct{}

func (n *noopMailer) SendBookingEmail(_ context.Context, msg models.BookingEmail) error {
	utils.GetLogger().Info("email (noop)",
		zap.String("to", msg.RecipientEmail),
		zap.String("mentor", msg.MentorName),
		zap.Time("startsAt", msg.StartsAt),
	)
	return nil
}
