package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the Gemini API for blog draft generation
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client from an API key
func New(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{client: client, model: defaultModel}, nil
}

// GenerateBlogContent asks the model for a blog draft on the given topic and
// returns the generated text.
func (c *Client) GenerateBlogContent(ctx context.Context, prompt string) (string, error) {
	fullPrompt := prompt + ". Generate a blog content for this topic in simple text format."

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(fullPrompt), nil)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
