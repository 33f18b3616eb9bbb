package prediction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/churn/internal/errors"
)

type endpointStub struct {
	body    []byte
	err     error
	delay   time.Duration
	request *sagemakerruntime.InvokeEndpointInput
}

func (s *endpointStub) InvokeEndpoint(ctx context.Context, in *sagemakerruntime.InvokeEndpointInput, _ ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error) {
	s.request = in

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.err != nil {
		return nil, s.err
	}
	return &sagemakerruntime.InvokeEndpointOutput{Body: s.body}, nil
}

var goldenVector = []float64{
	0, 1, 0, 0, 1, 1, 20, 0, 0, 1,
	0, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 1,
	1, 0, 0,
	1,
	1, 0, 0,
	0, 10, 24.45, 482.8, 0, 0, 0, 482.8, 3298,
	3,
}

func TestFormatPayload(t *testing.T) {
	expected := "0,1,0,0,1,1,20,0,0,1,0,1,0,0,0,0,0,0,0,0,1,1,0,0,1,1,0,0,0,10,24.45,482.8,0,0,0,482.8,3298,3"
	require.Equal(t, expected, FormatPayload(goldenVector))
	require.Equal(t, "", FormatPayload(nil))
}

func TestRound(t *testing.T) {
	require.Equal(t, 0.4907, Round(0.49071234))
	require.Equal(t, 0.4908, Round(0.49076))
	require.Equal(t, 1.0, Round(0.99999))
	require.Equal(t, 0.0, Round(0.00001))
}

func TestParseProbability(t *testing.T) {
	p, err := ParseProbability([]byte(" 0.123456\n"))
	require.NoError(t, err)
	require.Equal(t, 0.123456, p)

	for _, body := range []string{"", "   ", "abc", "[0.5]", "0.1,0.2", "NaN", "Inf"} {
		_, err := ParseProbability([]byte(body))
		require.Error(t, err, "body %q must be rejected", body)
	}
}

func TestSagemakerGatewayPredict(t *testing.T) {
	stub := &endpointStub{body: []byte("0.49071234")}
	gw := NewSagemakerGateway(stub, "xgboost-churn-model", "", time.Second)

	p, err := gw.Predict(context.Background(), goldenVector)
	require.NoError(t, err)
	require.Equal(t, 0.4907, p)

	require.NotNil(t, stub.request)
	require.Equal(t, "xgboost-churn-model", *stub.request.EndpointName)
	require.Equal(t, ContentTypeCSV, *stub.request.ContentType)
	require.Equal(t, FormatPayload(goldenVector), string(stub.request.Body))
}

func TestSagemakerGatewayTransportFailure(t *testing.T) {
	stub := &endpointStub{err: errors.New("connection refused")}
	gw := NewSagemakerGateway(stub, "xgboost-churn-model", ContentTypeCSV, time.Second)

	_, err := gw.Predict(context.Background(), goldenVector)
	var unavailable *apperrors.PredictionUnavailableErr
	require.ErrorAs(t, err, &unavailable)
}

func TestSagemakerGatewayNonNumericResponse(t *testing.T) {
	stub := &endpointStub{body: []byte(`{"error":"model not loaded"}`)}
	gw := NewSagemakerGateway(stub, "xgboost-churn-model", ContentTypeCSV, time.Second)

	_, err := gw.Predict(context.Background(), goldenVector)
	var unavailable *apperrors.PredictionUnavailableErr
	require.ErrorAs(t, err, &unavailable)
}

func TestSagemakerGatewayTimeout(t *testing.T) {
	stub := &endpointStub{body: []byte("0.5"), delay: time.Second}
	gw := NewSagemakerGateway(stub, "xgboost-churn-model", ContentTypeCSV, 20*time.Millisecond)

	start := time.Now()
	_, err := gw.Predict(context.Background(), goldenVector)
	require.Less(t, time.Since(start), 500*time.Millisecond, "gateway must not wait for slow endpoint")

	var unavailable *apperrors.PredictionUnavailableErr
	require.ErrorAs(t, err, &unavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
