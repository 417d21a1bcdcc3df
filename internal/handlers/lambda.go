package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Xiorelia/waitlist-service/internal/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// HandleWaitlistEvent is the Lambda entrypoint. Dependencies are constructed
// per invocation; the mail transport holds no cross-request state.
func HandleWaitlistEvent(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h, err := Bootstrap(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to bootstrap waitlist handler")
		return proxyResponse(http.StatusInternalServerError, models.SignupFailure{Error: "internal server error"})
	}
	return h.HandleLambda(ctx, request)
}

// HandleLambda adapts an API Gateway proxy request onto the signup service.
func (h *Handler) HandleLambda(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, body := h.process(ctx, []byte(request.Body))
	return proxyResponse(status, body)
}

func proxyResponse(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal response body")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"internal server error"}`,
		}, nil
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}, nil
}
