package prediction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	apperrors "github.com/umalmyha/churn/internal/errors"
)

const (
	// ContentTypeCSV is wire format of the churn model endpoint
	ContentTypeCSV     = "text/csv"
	probabilityDecimal = 4
	defaultTimeout     = 5 * time.Second
)

// Gateway returns churn probability for encoded feature vector
type Gateway interface {
	Predict(context.Context, []float64) (float64, error)
}

// InvokeEndpointAPI is the part of SageMaker runtime client gateway relies on
type InvokeEndpointAPI interface {
	InvokeEndpoint(context.Context, *sagemakerruntime.InvokeEndpointInput, ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

type sagemakerGateway struct {
	client      InvokeEndpointAPI
	endpoint    string
	contentType string
	timeout     time.Duration
}

// NewSagemakerGateway builds gateway calling hosted model endpoint. Client is expected to have retries disabled.
func NewSagemakerGateway(client InvokeEndpointAPI, endpoint, contentType string, timeout time.Duration) Gateway {
	if contentType == "" {
		contentType = ContentTypeCSV
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &sagemakerGateway{
		client:      client,
		endpoint:    endpoint,
		contentType: contentType,
		timeout:     timeout,
	}
}

func (g *sagemakerGateway) Predict(ctx context.Context, vector []float64) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.client.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(g.endpoint),
		ContentType:  aws.String(g.contentType),
		Body:         []byte(FormatPayload(vector)),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, apperrors.NewPredictionUnavailableErr(fmt.Sprintf("endpoint %s didn't answer within %s", g.endpoint, g.timeout), err)
		}
		return 0, apperrors.NewPredictionUnavailableErr(fmt.Sprintf("failed to invoke endpoint %s", g.endpoint), err)
	}

	p, err := ParseProbability(out.Body)
	if err != nil {
		return 0, apperrors.NewPredictionUnavailableErr(fmt.Sprintf("endpoint %s returned unexpected payload", g.endpoint), err)
	}
	return Round(p), nil
}

// FormatPayload renders vector as comma-delimited decimals, e.g. 0,1,20,24.45
func FormatPayload(vector []float64) string {
	values := make([]string, len(vector))
	for i, v := range vector {
		values[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(values, ",")
}

// ParseProbability reads single floating-point number from endpoint response body
func ParseProbability(body []byte) (float64, error) {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return 0, errors.New("empty response body")
	}

	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("response %q is not a number", raw)
	}

	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("response %q is not a finite number", raw)
	}
	return p, nil
}

// Round rounds probability to 4 decimal places
func Round(p float64) float64 {
	scale := math.Pow10(probabilityDecimal)
	return math.Round(p*scale) / scale
}
