package sns

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// maxSMSLength is the SNS limit for a single SMS body.
const maxSMSLength = 1600

// ISNS sends SMS through Amazon SNS.
type ISNS interface {
	SendSMS(ctx context.Context, phoneNumber, message string) (string, error)
}

// API is the subset of the SNS client used here.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsImpl struct {
	api API
}

// New creates an SNS sender using the default AWS credential chain.
func New(ctx context.Context, region string) (ISNS, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("sns: failed to load aws config: %w", err)
	}
	return &snsImpl{api: sns.NewFromConfig(cfg)}, nil
}

// NewWithAPI wraps an existing SNS API client.
func NewWithAPI(api API) ISNS {
	return &snsImpl{api: api}
}

// SendSMS publishes a transactional SMS and returns the SNS message id.
func (s *snsImpl) SendSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	if phoneNumber == "" {
		return "", errors.New("sns: phone number is required")
	}
	if len(message) > maxSMSLength {
		message = message[:maxSMSLength]
	}

	out, err := s.api.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {DataType: aws.String("String"), StringValue: aws.String("Transactional")},
		},
	})
	if err != nil {
		return "", fmt.Errorf("sns: publish: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
