package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeAPI) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSendEmail(t *testing.T) {
	api := &fakeAPI{}
	s := NewWithAPI(api)

	id, err := s.SendEmail(context.Background(), Email{
		From:    "noreply@example.com",
		To:      "manager@example.com",
		Subject: "[URGENT] Maintenance Request from Jane Doe",
		Body:    "Water everywhere",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, []string{"manager@example.com"}, api.input.Destination.ToAddresses)
	assert.Equal(t, "noreply@example.com", aws.ToString(api.input.Source))
	assert.Equal(t, "Water everywhere", aws.ToString(api.input.Message.Body.Text.Data))
}

func TestSendEmailErrors(t *testing.T) {
	s := NewWithAPI(&fakeAPI{err: errors.New("throttled")})

	_, err := s.SendEmail(context.Background(), Email{From: "a@x.com", To: "b@x.com"})
	assert.ErrorContains(t, err, "throttled")

	_, err = s.SendEmail(context.Background(), Email{To: "b@x.com"})
	assert.Error(t, err)
}
