package api

import (
	"context"
	"fmt"
	"net/http"

	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/urn"

	"go.opentelemetry.io/otel/codes"
)

// GetConversations lists the inbox conversations.
func (c Client) GetConversations(ctx context.Context) ([]Conversation, error) {
	data, _, err := c.getJson(ctx, "/messaging/conversations?keyVersion=LEGACY_INBOX")
	if err != nil {
		return nil, err
	}

	var conversations []Conversation
	for _, element := range data.Get("elements").Arr() {
		if id := urn.IDOf(element.Get("entityUrn").Str()); id != "" {
			conversations = append(conversations, Conversation{ID: id})
		}
	}
	return conversations, nil
}

// GetConversationDetails resolves the conversation held with the
// profile behind the given entity urn.
func (c Client) GetConversationDetails(ctx context.Context, profileUrn string) (ConversationDetails, error) {
	path := fmt.Sprintf(
		"/messaging/conversations?keyVersion=LEGACY_INBOX&q=participants&recipients=List(%s)",
		profileUrn,
	)
	data, _, err := c.getJson(ctx, path)
	if err != nil {
		return ConversationDetails{}, err
	}

	conversation := data.Get("elements").Index(0)
	if !conversation.Exists() {
		return ConversationDetails{}, fmt.Errorf("no conversation found with %s", profileUrn)
	}
	entityUrn, err := urn.Parse(conversation.Get("entityUrn").Str())
	if err != nil {
		return ConversationDetails{}, fmt.Errorf("conversation entity urn: %w", err)
	}
	return ConversationDetails{ID: entityUrn.ID}, nil
}

// GetConversation fetches a conversation's event stream by its id.
func (c Client) GetConversation(ctx context.Context, conversationID string) (Conversation, error) {
	_, _, err := c.getJson(ctx, fmt.Sprintf("/messaging/conversations/%s/events", conversationID))
	if err != nil {
		return Conversation{}, err
	}
	return Conversation{ID: conversationID}, nil
}

func messageEvent(body string) map[string]any {
	return map[string]any{
		"eventCreate": map[string]any{
			"value": map[string]any{
				"com.linkedin.voyager.messaging.create.MessageCreate": map[string]any{
					"body":        body,
					"attachments": []any{},
					"attributedBody": map[string]any{
						"text":       body,
						"attributes": []any{},
					},
					"mediaAttachments": []any{},
				},
			},
		},
	}
}

// SendMessage delivers a message either into an existing conversation
// or to a list of recipient entity urns, which starts a new one.
// Exactly one target must be given along with a non-empty body.
func (c Client) SendMessage(ctx context.Context, conversationID string, recipients []string, body string) error {
	ctx, span := tracer.Start(ctx, "api:SendMessage")
	defer span.End()

	if conversationID == "" && len(recipients) == 0 {
		return fmt.Errorf("%w: a conversation id or recipients are required", core.ErrInvalidInput)
	}
	if body == "" {
		return fmt.Errorf("%w: message body is empty", core.ErrInvalidInput)
	}

	path := fmt.Sprintf("/messaging/conversations/%s/events?action=create", conversationID)
	payload := any(messageEvent(body))
	if conversationID == "" {
		create := messageEvent(body)
		create["recipients"] = recipients
		create["subtype"] = "MEMBER_TO_MEMBER"
		path = "/messaging/conversations?action=create"
		payload = map[string]any{
			"keyVersion":         "LEGACY_INBOX",
			"conversationCreate": create,
		}
	}

	res, err := c.core.Post(ctx, path, payload)
	if err != nil {
		span.SetStatus(codes.Error, "send request failed")
		return err
	}
	if res.StatusCode() != http.StatusCreated {
		err := core.StatusError{Code: res.StatusCode()}
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// MarkConversationSeen flags every event in a conversation as read.
func (c Client) MarkConversationSeen(ctx context.Context, conversationID string) error {
	payload := map[string]any{
		"patch": map[string]any{
			"$set": map[string]any{"read": true},
		},
	}
	res, err := c.core.Post(ctx, "/messaging/conversations/"+conversationID, payload)
	if err != nil {
		return err
	}
	if res.StatusCode() != http.StatusOK {
		return core.StatusError{Code: res.StatusCode()}
	}
	return nil
}
