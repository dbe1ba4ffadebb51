package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"

	"github.com/dmitrymomot/hrkit/pkg/payload"
)

const structurerSystemPrompt = `You are an assistant that turns raw HR document text into structured data. You must return only a JSON object.`

const structurerPromptFormat = `Extract the following fields from this HR document text if present:
- name
- tax_id (Brazilian CPF, formatted 000.000.000-00)
- document_date (ISO 8601, YYYY-MM-DD)
- position
- department
- salary (number, no currency symbol)
- contract_type
- start_date (ISO 8601, YYYY-MM-DD)
- main_skills (list of soft/interpersonal skills)
- hard_skills (list of technical skills, tools, technologies)
- work_experience (list of work experiences with the following structure for each):
  * company
  * position
  * start_date (ISO 8601, YYYY-MM-DD)
  * end_date (ISO 8601, omit for a current job)
  * current_job (boolean)
  * description
  * achievements (list of key achievements)
  * technologies_used (list of technologies used)

For skills and work experience, analyze the text carefully and extract:
- Any mentioned skills, technologies, or competencies
- All work experiences with their details
- Key achievements and responsibilities from each role
- Technologies and tools used in each position

Leave out any field the text does not support. Return ONLY a valid JSON object with these fields, nothing else.

Document text:
%s`

// OpenAIStructurer extracts structured candidate data from raw document text
// through an OpenAI chat completion constrained to a JSON object response.
// Its output is an untrusted raw payload; callers feed it through the
// canonicalizer like any other extraction source.
type OpenAIStructurer struct {
	cfg    StructurerConfig
	client *openai.Client
}

// NewOpenAIStructurer creates a structurer backed by the OpenAI API.
func NewOpenAIStructurer(cfg StructurerConfig) *OpenAIStructurer {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)

	return &OpenAIStructurer{
		cfg:    cfg,
		client: &client,
	}
}

// Structure sends the document text through the extraction prompt and decodes
// the completion into a raw payload.
func (s *OpenAIStructurer) Structure(ctx context.Context, text string) (payload.Payload, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(structurerSystemPrompt),
			openai.UserMessage(fmt.Sprintf(structurerPromptFormat, text)),
		},
		Model: shared.ChatModel(s.cfg.Model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(s.cfg.Temperature),
		MaxTokens:   openai.Int(s.cfg.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	content := stripJSONFence(completion.Choices[0].Message.Content)
	structured, err := payload.FromJSON([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parse completion JSON: %w", err)
	}
	return structured, nil
}

// stripJSONFence removes a markdown code fence around the completion body.
// Some models emit one even under the JSON object response format.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(s, "```json"); ok {
		s = after
	} else if after, ok := strings.CutPrefix(s, "```"); ok {
		s = after
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
