package guide

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/pribylovaa/go-lifelog/internal/models"
)

// contentGenerator — часть *genai.Models, нужная генератору.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAI — генератор гайда через Gemini API.
type GenAI struct {
	models contentGenerator
	model  string
}

var _ Generator = (*GenAI)(nil)

// NewGenAI создаёт клиент Gemini API.
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	const op = "guide/NewGenAI"

	if apiKey == "" {
		return nil, fmt.Errorf("%s: api key is required", op)
	}

	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GenAI{models: client.Models, model: model}, nil
}

// Generate отправляет подсказку с контекстом дня и возвращает текст ответа.
func (g *GenAI) Generate(ctx context.Context, in Context) (string, error) {
	const op = "guide/GenAI/Generate"

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(in)), nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyOutput)
	}

	return text, nil
}

// Prompt формирует текст запроса к модели. Фотографии в запрос не попадают.
func Prompt(in Context) string {
	var b strings.Builder

	b.WriteString("You are a calm, practical journaling coach. ")
	b.WriteString("Write a short daily guide with three sections titled Focus, Energy and Reflection, ")
	b.WriteString("two bullet points each, plain text, no markdown headers.\n\n")
	fmt.Fprintf(&b, "Date: %s\n", in.Day.Format(models.DateLayout))
	fmt.Fprintf(&b, "Current streak: %d day(s)\n", in.Streak)

	if p := in.Previous; p != nil {
		fmt.Fprintf(&b, "Previous entry (%s): quality %d/10, mood %s (%d/10), energy %d/10, progress %d/10\n",
			p.Date.Format(models.DateLayout), p.QualityScore, p.Mood, p.MoodScore, p.EnergyScore, p.ProgressScore)

		if p.Activities != "" {
			fmt.Fprintf(&b, "Activities: %s\n", p.Activities)
		}
		if plan := strings.TrimSpace(p.MorningPlan); plan != "" {
			fmt.Fprintf(&b, "Plan: %s\n", plan)
		}
		if refl := strings.TrimSpace(p.EveningReflection); refl != "" {
			fmt.Fprintf(&b, "Reflection: %s\n", refl)
		}
	} else {
		b.WriteString("No previous entries.\n")
	}

	if tag := topTag(in.Recent); tag != "" {
		fmt.Fprintf(&b, "Most frequent recent activity: %s\n", tag)
	}

	return b.String()
}
