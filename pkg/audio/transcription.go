package audio

import (
	"bytes"
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type ItfTranscriber interface {
	TranscribeAudio(ctx context.Context, data []byte, fileName string, language string) (string, error)
}

type TranscriptionService struct {
	client *openai.Client
}

func NewTranscriptionService(apiKey string) ItfTranscriber {
	client := openai.NewClient(apiKey)
	return &TranscriptionService{client: client}
}

func (t *TranscriptionService) TranscribeAudio(ctx context.Context, data []byte, fileName string, language string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(data),
		FilePath: fileName,
		Language: whisperLanguage(language),
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text), nil
}

// whisperLanguage converts a BCP-47 locale such as "hi-IN" into the
// ISO-639-1 code Whisper expects.
func whisperLanguage(locale string) string {
	if idx := strings.Index(locale, "-"); idx > 0 {
		return strings.ToLower(locale[:idx])
	}
	return strings.ToLower(locale)
}
