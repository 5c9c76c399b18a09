package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

const formGenerationPrompt = `Create a %[2]s form in language "%[3]s" based on this description: %[1]q

Return ONLY a valid JSON object in this exact format:
{
  "title": "Form Title",
  "description": "Form Description",
  "pages": [
    {
      "questions": [
        {
          "text": "Question text",
          "type": "text|email|tel|textarea|radio|checkbox",
          "dataType": "SHORT_TEXT|LONG_TEXT|NUMBER|BOOLEAN|EMAIL",
          "optional": true,
          "choices": ["option1", "option2"]
        }
      ]
    }
  ]
}

Rules:
- Use "choices" only for radio and checkbox questions
- Use "optional" instead of "required" (optional: true means not required)
- Create logical pages with at most 5 questions per page
- Use at most %[4]d questions in total
- Make questions relevant to the user's request
- Return only the JSON, no additional text`

type geminiGenerator struct {
	client *utils.HTTPClient
	url    string
	apiKey string
	logger *logger.Logger
}

// NewAIGenerator returns a Gemini backed [AIGenerator]. Without an API key
// every call fails with [ErrAIDisabled].
func NewAIGenerator(cfg config.AI, logger *logger.Logger) AIGenerator {
	if cfg.APIKey == "" {
		return disabledGenerator{}
	}

	return &geminiGenerator{
		client: utils.NewHTTPClient("", cfg.Timeout),
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generatedForm is the JSON shape the model is asked to produce.
type generatedForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Pages       []struct {
		Questions []struct {
			Text     string         `json:"text"`
			Type     string         `json:"type"`
			DataType string         `json:"dataType"`
			Optional bool           `json:"optional"`
			Choices  models.Choices `json:"choices"`
		} `json:"questions"`
	} `json:"pages"`
}

func (g *geminiGenerator) GenerateForm(ctx context.Context, req models.AIFormRequest) (models.Form, error) {
	log := logger.FromContext(ctx)
	req = req.WithDefaults()

	body := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{
		Text: fmt.Sprintf(formGenerationPrompt, req.Prompt, req.FormType, req.Language, req.MaxQuestions),
	}}}}}

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(g.url)
	if err != nil {
		log.Err(err).Str("func", "*geminiGenerator.GenerateForm").Msg("gemini request failed")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBadGateway, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*geminiGenerator.GenerateForm").Int("status", resp.StatusCode()).Msg("gemini returned an error")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBadGateway, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return models.Form{}, fmt.Errorf("%w: no candidates", ErrInvalidAIResponse)
	}

	raw, err := extractJSONObject(result.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return models.Form{}, err
	}

	var generated generatedForm
	if err = json.Unmarshal([]byte(raw), &generated); err != nil {
		log.Err(err).Str("func", "*geminiGenerator.GenerateForm").Msg("model output is not a form")
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}

	return generated.toForm(time.Now().UnixMilli()), nil
}

// extractJSONObject strips markdown fences and returns the text between the
// first "{" and the last "}".
func extractJSONObject(text string) (string, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return "", fmt.Errorf("%w: no json object in model output", ErrInvalidAIResponse)
	}

	return text[start : end+1], nil
}

// toForm converts the model output. Questions get increasing CreatedAt keys
// starting at base so that display order equals generation order.
func (g generatedForm) toForm(base int64) models.Form {
	form := models.Form{
		Title:       strings.TrimSpace(g.Title),
		Description: strings.TrimSpace(g.Description),
		Pages:       make([]models.Page, 0, len(g.Pages)),
	}

	seq := base
	for i, page := range g.Pages {
		questions := make([]models.Question, 0, len(page.Questions))
		for _, q := range page.Questions {
			qType := models.QuestionType(strings.ToLower(strings.TrimSpace(q.Type)))
			if qType == "" {
				qType = models.QuestionText
			}
			question := models.Question{
				Text:      strings.TrimSpace(q.Text),
				Type:      qType,
				DataType:  normalizeDataType(q.DataType),
				Optional:  q.Optional,
				Choices:   q.Choices,
				CreatedAt: seq,
			}
			if !qType.IsMulti() {
				question.Choices = nil
			}
			questions = append(questions, question)
			seq++
		}
		form.Pages = append(form.Pages, models.Page{PageIndex: i, Questions: questions})
	}

	return form
}

func normalizeDataType(raw string) models.DataType {
	switch dt := models.DataType(strings.ToUpper(strings.TrimSpace(raw))); dt {
	case models.DataShortText, models.DataLongText, models.DataNumber, models.DataBoolean, models.DataEmail:
		return dt
	case "BOOL":
		return models.DataBoolean
	default:
		return models.DataShortText
	}
}

type disabledGenerator struct{}

func (disabledGenerator) GenerateForm(context.Context, models.AIFormRequest) (models.Form, error) {
	return models.Form{}, ErrAIDisabled
}
