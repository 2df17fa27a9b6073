package content

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/pkg/config"
)

// modelClient is the part of *genai.Models the generator calls.
type modelClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator writes habit advice and draws card art with Gemini models.
// Without an API key every call reports ErrMissingAPIKey.
type Generator struct {
	models     modelClient
	textModel  string
	imageModel string
	art        ArtStore
}

func NewGenerator(ctx context.Context, cfg config.ContentConfig, art ArtStore) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return NewGeneratorWithClient(nil, cfg.TextModel, cfg.ImageModel, art), nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.New("creating genai client error: " + err.Error())
	}
	return NewGeneratorWithClient(client.Models, cfg.TextModel, cfg.ImageModel, art), nil
}

func NewGeneratorWithClient(models modelClient, textModel, imageModel string, art ArtStore) *Generator {
	if art == nil {
		art = DataURLStore{}
	}
	return &Generator{
		models:     models,
		textModel:  textModel,
		imageModel: imageModel,
		art:        art,
	}
}

func (g *Generator) Advice(ctx context.Context, prompt string) (string, error) {
	if g.models == nil {
		return "", errorvalues.ErrMissingAPIKey
	}
	resp, err := g.models.GenerateContent(ctx, g.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.New("generating advice error: " + err.Error())
	}
	return resp.Text(), nil
}

func artPrompt(name, title string) string {
	return fmt.Sprintf("Trading card illustration of Taoist figure: %s (%s). "+
		"Chibi style, vector art, colorful, sticker-like, white background, 3:4 portrait aspect ratio.", name, title)
}

// CardArt returns the stored reference of the first inline image the model
// answers with.
func (g *Generator) CardArt(ctx context.Context, name, title string) (string, error) {
	if g.models == nil {
		return "", errorvalues.ErrMissingAPIKey
	}
	resp, err := g.models.GenerateContent(ctx, g.imageModel, genai.Text(artPrompt(name, title)), nil)
	if err != nil {
		return "", errors.New("generating card art error: " + err.Error())
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("generating card art error: no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return g.art.Put(ctx, part.InlineData.MIMEType, part.InlineData.Data)
	}
	return "", errors.New("generating card art error: no image in response")
}
