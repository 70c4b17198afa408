// File: services/oracle/gemini.go
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hotelvoice/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// slotPrompt instructs the model to answer with nothing but the slot
// schema. Dates the model cannot determine stay empty.
const slotPrompt = `Du bist ein Parser für deutsche Hotelbuchungsanfragen. Antworte NUR mit EINEM JSON-Objekt, das GENAU dieses Schema hat (keine zusätzlichen Felder, kein Markdown):

{
  "check_in": "YYYY-MM-DD",
  "check_out": "YYYY-MM-DD",
  "adults": 0,
  "children": 0
}

Regeln:
- Unbekannte Daten als leeren String "" lassen.
- adults mindestens 1, wenn Personen erwähnt werden; sonst 0.
- children 0, wenn keine Kinder erwähnt werden.

Anfrage: %s`

type GeminiOracle struct {
	model *genai.GenerativeModel
}

func NewGeminiOracle(apiKey, modelName string) (*GeminiOracle, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiOracle{model: client.GenerativeModel(modelName)}, nil
}

func (g *GeminiOracle) ExtractSlots(ctx context.Context, text string) (*models.BookingSlots, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(slotPrompt, text)))
	if err != nil {
		return nil, &models.UpstreamUnavailable{Upstream: "oracle", Err: err}
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return parseSlotJSON(sb.String())
}

// parseSlotJSON decodes the model answer, tolerating markdown fences.
func parseSlotJSON(raw string) (*models.BookingSlots, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var payload struct {
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
		Adults   int    `json:"adults"`
		Children int    `json:"children"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &models.UpstreamUnavailable{Upstream: "oracle", Err: fmt.Errorf("malformed oracle answer: %w", err)}
	}

	slots := &models.BookingSlots{Adults: payload.Adults, Children: payload.Children}
	if payload.CheckIn != "" {
		slots.CheckIn = &models.ParsedDate{Date: payload.CheckIn}
	}
	if payload.CheckOut != "" {
		slots.CheckOut = &models.ParsedDate{Date: payload.CheckOut}
	}
	return slots, nil
}
