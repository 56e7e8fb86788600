package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

// Email is a plain-text message for a single recipient.
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

// ISES sends email through Amazon SES.
type ISES interface {
	SendEmail(ctx context.Context, email Email) (string, error)
}

// API is the subset of the SES client used here.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesImpl struct {
	api API
}

// New creates an SES sender using the default AWS credential chain.
func New(ctx context.Context, region string) (ISES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("ses: failed to load aws config: %w", err)
	}
	return &sesImpl{api: ses.NewFromConfig(cfg)}, nil
}

// NewWithAPI wraps an existing SES API client.
func NewWithAPI(api API) ISES {
	return &sesImpl{api: api}
}

// SendEmail sends the email and returns the SES message id.
func (s *sesImpl) SendEmail(ctx context.Context, email Email) (string, error) {
	if email.From == "" || email.To == "" {
		return "", errors.New("ses: sender and recipient are required")
	}

	out, err := s.api.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(email.From),
		Destination: &types.Destination{ToAddresses: []string{email.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(email.Body), Charset: aws.String(charsetUTF8)},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses: send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
