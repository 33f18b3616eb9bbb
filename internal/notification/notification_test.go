package notification

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/churn/internal/model"
	"gopkg.in/gomail.v2"
)

type senderStub struct {
	sent []*gomail.Message
	err  error
}

func (s *senderStub) DialAndSend(m ...*gomail.Message) error {
	s.sent = append(s.sent, m...)
	return s.err
}

type sesStub struct {
	input *ses.SendEmailInput
	err   error
}

func (s *sesStub) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	s.input = in
	if s.err != nil {
		return nil, s.err
	}
	return &ses.SendEmailOutput{}, nil
}

func TestMessageFor(t *testing.T) {
	support := MessageFor(model.InterventionSupport)
	require.Equal(t, "Telecom Support Email", support.Subject)
	require.Contains(t, support.Body, "support email from Telecom")

	discount := MessageFor(model.InterventionDiscount)
	require.Equal(t, "Telecom Discount", discount.Subject)
	require.Contains(t, discount.Body, "20% discount voucher")
}

func TestSMTPNotifier(t *testing.T) {
	stub := &senderStub{}
	n := NewSMTPNotifier(stub, "noreply@telecom.test", "customer@telecom.test")

	err := n.Notify(context.Background(), MessageFor(model.InterventionSupport))
	require.NoError(t, err)
	require.Len(t, stub.sent, 1, "exactly one email must be sent")

	m := stub.sent[0]
	require.Equal(t, []string{"noreply@telecom.test"}, m.GetHeader("From"))
	require.Equal(t, []string{"customer@telecom.test"}, m.GetHeader("To"))
	require.Equal(t, []string{"Telecom Support Email"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Telecom")
}

func TestSMTPNotifierFailure(t *testing.T) {
	stub := &senderStub{err: errors.New("relay refused")}
	n := NewSMTPNotifier(stub, "noreply@telecom.test", "customer@telecom.test")

	err := n.Notify(context.Background(), MessageFor(model.InterventionDiscount))
	require.Error(t, err)
}

func TestSMTPNotifierCancelledContext(t *testing.T) {
	stub := &senderStub{}
	n := NewSMTPNotifier(stub, "noreply@telecom.test", "customer@telecom.test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Notify(ctx, MessageFor(model.InterventionDiscount))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, stub.sent, "nothing must be sent for cancelled request")
}

func TestSESNotifier(t *testing.T) {
	stub := &sesStub{}
	n := NewSESNotifier(stub, "noreply@telecom.test", "customer@telecom.test")

	err := n.Notify(context.Background(), MessageFor(model.InterventionDiscount))
	require.NoError(t, err)

	require.NotNil(t, stub.input)
	require.Equal(t, "noreply@telecom.test", *stub.input.Source)
	require.Equal(t, []string{"customer@telecom.test"}, stub.input.Destination.ToAddresses)
	require.Equal(t, "Telecom Discount", *stub.input.Message.Subject.Data)
	require.Contains(t, *stub.input.Message.Body.Text.Data, "VOUCHER CODE")
}
