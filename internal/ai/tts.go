package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/openai/openai-go"
)

// Synthesizer converts a script into speech audio written to a local file.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, path string) error
}

// SpeechOptions selects the TTS model, voice and playback speed.
type SpeechOptions struct {
	Model string
	Voice string
	Speed float64
}

// SpeechClient synthesizes speech through the OpenAI audio API.
type SpeechClient struct {
	client *openai.Client
	opts   SpeechOptions
}

func NewSpeechClient(c *OpenAIClient, opts SpeechOptions) *SpeechClient {
	return &SpeechClient{client: c.client, opts: opts}
}

// Synthesize streams the synthesized audio bytes to path.
func (s *SpeechClient) Synthesize(ctx context.Context, text, path string) error {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(s.opts.Model),
		Voice: openai.AudioSpeechNewParamsVoice(s.opts.Voice),
		Input: text,
		Speed: openai.Float(s.opts.Speed),
	})
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Body.Close()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
