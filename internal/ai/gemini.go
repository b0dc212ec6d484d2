package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pagelift/internal/config"
	"pagelift/internal/model"
)

const systemPrompt = `You are a landing page generator. Produce a single complete HTML5 document
with inline CSS for the page the user describes. Return only the HTML document,
no explanations and no markdown.`

// PageRequest describes a page to generate. Brand is optional; when present,
// its tone and colors are folded into the prompt.
type PageRequest struct {
	Prompt string
	Brand  *model.BrandProfile
}

// Generator produces landing page HTML from a request.
type Generator interface {
	GeneratePage(ctx context.Context, req PageRequest) (string, error)
}

// GeminiGenerator implements Generator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed page generator.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	m := cfg.Model
	if m == "" {
		m = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: m}, nil
}

var _ Generator = (*GeminiGenerator)(nil)

// GeneratePage asks the model for a full HTML document and strips any
// markdown fences the model wrapped around it.
func (g *GeminiGenerator) GeneratePage(ctx context.Context, req PageRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(buildUserPrompt(req)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	html := StripCodeFences(result.Text())
	if html == "" {
		return "", fmt.Errorf("empty generation result")
	}
	return html, nil
}

// buildUserPrompt folds the brand profile into the page description.
func buildUserPrompt(req PageRequest) string {
	var b strings.Builder
	b.WriteString(req.Prompt)

	if br := req.Brand; br != nil {
		b.WriteString("\n\nBrand guidelines:\n")
		fmt.Fprintf(&b, "- Brand name: %s\n", br.Name)
		if br.Description != "" {
			fmt.Fprintf(&b, "- About: %s\n", br.Description)
		}
		if br.Industry != "" {
			fmt.Fprintf(&b, "- Industry: %s\n", br.Industry)
		}
		if br.Tone != "" {
			fmt.Fprintf(&b, "- Tone of voice: %s\n", br.Tone)
		}
		if br.PrimaryColor != "" {
			fmt.Fprintf(&b, "- Primary color: %s\n", br.PrimaryColor)
		}
		if br.SecondaryColor != "" {
			fmt.Fprintf(&b, "- Secondary color: %s\n", br.SecondaryColor)
		}
	}

	return b.String()
}

// StripCodeFences removes a single wrapping markdown code fence
// (``` or ```html) if the model added one despite instructions.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}

	out = strings.TrimPrefix(out, "```")
	if idx := strings.IndexByte(out, '\n'); idx >= 0 {
		// Drop the language tag line (e.g. "html")
		out = out[idx+1:]
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
