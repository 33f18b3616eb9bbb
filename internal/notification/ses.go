package notification

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SendEmailAPI is the part of SES client notifier relies on
type SendEmailAPI interface {
	SendEmail(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesNotifier struct {
	client SendEmailAPI
	from   string
	to     string
}

// NewSESNotifier builds notifier over SES, both addresses must be verified identities
func NewSESNotifier(client SendEmailAPI, from, to string) Notifier {
	return &sesNotifier{client: client, from: from, to: to}
}

func (n *sesNotifier) Notify(ctx context.Context, msg Message) error {
	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(n.from),
		Destination: &types.Destination{ToAddresses: []string{n.to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body)},
			},
		},
	})
	return err
}
