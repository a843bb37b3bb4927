package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

var ErrEmptyResponse = errors.New("empty response from model")

type (
	// Validator checks a submission's content bag for plausibility.
	Validator interface {
		ValidateSubmission(ctx context.Context, content entities.SubmissionContent, submissionType string) (entities.LLMValidation, error)
	}

	geminiValidator struct {
		client *genai.Client
		model  *genai.GenerativeModel
	}
)

func NewGeminiValidator(apiKey string, modelName string) (Validator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.1)
	model.SetTopK(40)
	model.SetTopP(0.8)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text("你是一個專業的台灣鮮乳產品資訊驗證專家，請以 JSON 格式回覆驗證結果。"),
		},
	}

	return &geminiValidator{client: client, model: model}, nil
}

func submissionTypeLabel(submissionType string) string {
	switch submissionType {
	case entities.SubmissionTypeBrand:
		return "新品牌"
	case entities.SubmissionTypeUpdate:
		return "更新"
	default:
		return "圖片"
	}
}

func (g *geminiValidator) ValidateSubmission(ctx context.Context, content entities.SubmissionContent, submissionType string) (entities.LLMValidation, error) {
	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return entities.LLMValidation{}, err
	}

	prompt := fmt.Sprintf(`你是一個台灣鮮乳產品資訊驗證專家。請驗證以下%s投稿資訊的準確性和完整性。

投稿內容：
%s

請檢查以下項目：
1. 品牌名稱和產品名稱是否合理（是否為真實存在的台灣鮮乳品牌）
2. 殺菌方式是否正確（LTLT/HTST/UHT/ESL）
3. 容量是否合理（常見為 200ml, 290ml, 400ml, 500ml, 936ml, 1000ml, 1858ml, 1892ml 等）
4. 保存期限是否合理（LTLT/HTST 通常 7-14 天，UHT 可達數月）
5. 價格是否在合理範圍內
6. 通路資訊是否正確

請以 JSON 格式回覆：
{
  "isValid": true/false,
  "confidence": 0-100 的數字,
  "issues": ["問題1", "問題2"],
  "suggestions": ["建議1", "建議2"]
}`, submissionTypeLabel(submissionType), string(contentJSON))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return entities.LLMValidation{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return entities.LLMValidation{}, ErrEmptyResponse
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return entities.LLMValidation{}, ErrEmptyResponse
	}

	result, err := parseValidationResponse(string(text))
	if err != nil {
		return entities.LLMValidation{}, err
	}
	return result, nil
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseValidationResponse tolerates markdown fences and surrounding prose
// around the model's JSON object.
func parseValidationResponse(raw string) (entities.LLMValidation, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	if match := jsonPattern.FindString(text); match != "" {
		text = match
	}

	var parsed struct {
		IsValid     bool     `json:"isValid"`
		Confidence  float64  `json:"confidence"`
		Issues      []string `json:"issues"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &parsed); err != nil {
		return entities.LLMValidation{}, fmt.Errorf("failed to parse validation response: %w", err)
	}

	confidence := int(parsed.Confidence)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	result := entities.LLMValidation{
		IsValid:     parsed.IsValid,
		Confidence:  confidence,
		Issues:      parsed.Issues,
		Suggestions: parsed.Suggestions,
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return result, nil
}
