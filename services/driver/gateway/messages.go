package gateway

import (
	"context"
	"net/http"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
)

// GetMessages fetches dispatcher messages, normalized like the order
// lists: an empty or unrecognized payload is an empty list.
func (c *Client) GetMessages(ctx context.Context) models.MessagesResult {
	if result, ok := c.requireLogin(); !ok {
		return models.MessagesResult{Result: result, Messages: []models.Message{}}
	}

	envelope, err := c.transport.Request(ctx, http.MethodGet, endpointMessages, nil, nil)
	if err != nil {
		c.logger.Error("messages fetch failed", logger.Err(err))
		return models.MessagesResult{Result: models.Fail(apierr.MessageOf(err)), Messages: []models.Message{}}
	}

	return models.MessagesResult{Result: models.Ok(), Messages: envelope.MessageList()}
}

// MarkMessageRead marks one message as read
func (c *Client) MarkMessageRead(ctx context.Context, messageID int64) models.Result {
	if result, ok := c.requireLogin(); !ok {
		return result
	}

	endpoint := orderEndpoint(endpointMessageRead, messageID)
	envelope, err := c.transport.Request(ctx, http.MethodPost, endpoint, nil, nil)
	if err != nil {
		return models.Fail(apierr.MessageOf(err))
	}

	if !envelope.OK() {
		message := envelope.ErrorMessage()
		if message == "" {
			message = "mark as read rejected"
		}
		return models.Fail(message)
	}

	return models.Ok()
}

// SendMessage sends a reply or a new message to dispatch
func (c *Client) SendMessage(ctx context.Context, message models.OutgoingMessage) models.Result {
	if result, ok := c.requireLogin(); !ok {
		return result
	}

	if message.Content == "" {
		return models.Fail("message content must not be empty")
	}

	envelope, err := c.transport.Request(ctx, http.MethodPost, endpointMessages, message, nil)
	if err != nil {
		c.logger.Error("message send failed", logger.Err(err))
		return models.Fail(apierr.MessageOf(err))
	}

	if !envelope.OK() {
		failMessage := envelope.ErrorMessage()
		if failMessage == "" {
			failMessage = "message rejected"
		}
		return models.Fail(failMessage)
	}

	return models.Ok()
}
