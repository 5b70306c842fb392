package transcriber

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/lecture-notes/internal/gemini"
)

const (
	audioMIME = "audio/wav"

	recognitionPrompt = "Transcribe the speech in this audio recording verbatim. The spoken language is %s. " +
		"Return only the transcript text, without timestamps, speaker labels or commentary."
)

type sdkRecognizer struct {
	pool  gemini.Pool
	model string
}

// NewSDKRecognizer recognizes speech through the Gemini SDK client pool.
func NewSDKRecognizer(pool gemini.Pool, model string) Recognizer {
	return &sdkRecognizer{pool: pool, model: model}
}

func (r *sdkRecognizer) Recognize(ctx context.Context, audio []byte, languageHint string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(recognitionPrompt, languageHint)),
			genai.NewPartFromBytes(audio, audioMIME),
		}, genai.RoleUser),
	}
	return r.pool.Generate(ctx, r.model, contents, nil)
}

type restRecognizer struct {
	client   *resty.Client
	endpoint string
	apiKeys  []string
	model    string
}

// NewRESTRecognizer calls the generateContent REST endpoint directly. Keys are
// tried in order until one succeeds.
func NewRESTRecognizer(client *resty.Client, endpoint string, apiKeys []string, model string) Recognizer {
	return &restRecognizer{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKeys:  apiKeys,
		model:    model,
	}
}

type restPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *restInlineData `json:"inline_data,omitempty"`
}

type restInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restRequest struct {
	Contents []restContent `json:"contents"`
}

type restResponse struct {
	Candidates []struct {
		Content restContent `json:"content"`
	} `json:"candidates"`
}

type restError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (r *restRecognizer) Recognize(ctx context.Context, audio []byte, languageHint string) (string, error) {
	if len(r.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys for REST recognition")
	}

	body := restRequest{
		Contents: []restContent{{
			Role: "user",
			Parts: []restPart{
				{Text: fmt.Sprintf(recognitionPrompt, languageHint)},
				{InlineData: &restInlineData{MimeType: audioMIME, Data: base64.StdEncoding.EncodeToString(audio)}},
			},
		}},
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", r.endpoint, r.model)

	var lastErr error
	for _, key := range r.apiKeys {
		text, err := r.call(ctx, url, key, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (r *restRecognizer) call(ctx context.Context, url, key string, body restRequest) (string, error) {
	var out restResponse
	var apiErr restError

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", key).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("rest recognize: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("rest recognize: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
		}
		return "", fmt.Errorf("rest recognize: status %d", resp.StatusCode())
	}

	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("rest recognize: empty response")
	}
	return sb.String(), nil
}
