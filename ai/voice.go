package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"hostelhub-backend/models"
	"hostelhub-backend/utils"
)

// IssueDraft is the structured report extracted from a voice transcript.
type IssueDraft struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    models.IssueCategory `json:"category"`
	Priority    models.IssuePriority `json:"priority"`
}

// VoiceParser turns a raw transcript into an issue draft. Implementations
// must always return a usable draft: on any failure they fall back instead
// of propagating the error to the voice-report flow.
type VoiceParser interface {
	Parse(ctx context.Context, transcript string) IssueDraft
}

const voiceParsePrompt = `You are an assistant for a hostel issue tracker.
Analyze the following user complaint transcript and extract structured data.

TRANSCRIPT: %q

Return ONLY a JSON object with these fields:
- title: A short, concise title (max 6-8 words).
- description: A polished but accurate version of the complaint.
- category: One of [PLUMBING, ELECTRICAL, CLEANLINESS, INTERNET, FURNITURE, SECURITY, OTHER]. Choose the most relevant.
- priority: One of [LOW, MEDIUM, HIGH, EMERGENCY].
    - EMERGENCY: Immediate danger (fire, gas leak, sparked wires, flooding).
    - HIGH: Major inconvenience (no water, no power, broken door).
    - MEDIUM: Standard maintenance.
    - LOW: Minor cosmetic issues or suggestions.

Output pure JSON only, no markdown, no explanations.`

// GroqParser calls the Groq chat-completions API.
type GroqParser struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

func NewGroqParser() *GroqParser {
	return &GroqParser{
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "openai/gpt-oss-120b",
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func fallbackDraft(transcript string) IssueDraft {
	return IssueDraft{
		Title:       "Voice Report (Parse Failed)",
		Description: transcript,
		Category:    models.OtherIssue,
		Priority:    models.MediumPriority,
	}
}

// Parse never fails: any error along the way degrades to the deterministic
// fallback draft carrying the raw transcript.
func (p *GroqParser) Parse(ctx context.Context, transcript string) IssueDraft {
	draft, err := p.parse(ctx, transcript)
	if err != nil {
		utils.LogError(err, "Voice transcript parse failed, using fallback")
		return fallbackDraft(transcript)
	}
	return draft
}

func (p *GroqParser) parse(ctx context.Context, transcript string) (IssueDraft, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return IssueDraft{}, fmt.Errorf("GROQ_API_KEY missing")
	}

	payload := map[string]interface{}{
		"model":       p.Model,
		"temperature": 0.1,
		"messages": []map[string]string{
			{"role": "user", "content": fmt.Sprintf(voiceParsePrompt, transcript)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return IssueDraft{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return IssueDraft{}, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return IssueDraft{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return IssueDraft{}, fmt.Errorf("groq error, status %d", resp.StatusCode)
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return IssueDraft{}, err
	}
	if len(apiResp.Choices) == 0 {
		return IssueDraft{}, fmt.Errorf("empty completion")
	}

	// Models sometimes wrap the JSON in markdown fences despite the prompt
	content := apiResp.Choices[0].Message.Content
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var draft IssueDraft
	if err := json.Unmarshal([]byte(content), &draft); err != nil {
		return IssueDraft{}, err
	}

	if draft.Title == "" {
		draft.Title = "Voice Report"
	}
	if draft.Description == "" {
		draft.Description = transcript
	}
	if !draft.Category.Valid() {
		draft.Category = models.OtherIssue
	}
	if !draft.Priority.Valid() {
		draft.Priority = models.MediumPriority
	}

	return draft, nil
}
