package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"tractor-backend/internal/apperrors"
)

// completionClient is the slice of the OpenAI client the drafter needs,
// kept narrow so tests can stub it.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Drafter produces payment-reminder email drafts from structured input.
type Drafter struct {
	client completionClient
	model  string
}

// NewDrafter builds a drafter backed by the OpenAI API.
func NewDrafter(apiKey, model string) *Drafter {
	return &Drafter{client: openai.NewClient(apiKey), model: model}
}

// NewDrafterWithClient is used by tests to inject a stub client.
func NewDrafterWithClient(client completionClient, model string) *Drafter {
	return &Drafter{client: client, model: model}
}

const systemPrompt = "You are an AI assistant specialized in drafting personalized payment reminder emails. " +
	"Based on the provided customer information and branding elements, create a professional and friendly " +
	"payment reminder email draft. Incorporate the branding elements if provided, and ensure the email " +
	"clearly states the amount due and the due date. Respond with only the email draft."

// DraftReminderEmail generates one reminder draft. The amount is
// rendered in rupees the same way the invoice PDF prints it.
func (d *Drafter) DraftReminderEmail(ctx context.Context, customerName string, amountDue float64, dueDate, brandingElements string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer Name: %s\n", customerName)
	fmt.Fprintf(&b, "Amount Due: Rs. %.2f\n", amountDue)
	fmt.Fprintf(&b, "Due Date: %s\n", dueDate)
	if brandingElements != "" {
		fmt.Fprintf(&b, "Branding Elements: %s\n", brandingElements)
	}
	b.WriteString("\nDraft the payment reminder email:")

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", apperrors.NewIO("reminder email generation failed").WithCause(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", apperrors.NewIO("reminder email generation returned an empty draft")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
