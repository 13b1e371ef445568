// Package platform provides development stand-ins for the robot's hardware
// collaborators: a console speaker, a logging motion driver and a stub camera.
// On the robot each is replaced by its real driver behind the same interface.
package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// ConsoleSpeaker prints responses instead of synthesizing speech.
type ConsoleSpeaker struct {
	out io.Writer
}

func NewConsoleSpeaker(out io.Writer) *ConsoleSpeaker {
	return &ConsoleSpeaker{out: out}
}

func (s *ConsoleSpeaker) Speak(_ context.Context, text string, lang intent.Language) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s\n", lang, text)
	return err
}

// LogMotionDriver logs motion commands instead of driving motors.
type LogMotionDriver struct {
	logger *slog.Logger
}

func NewLogMotionDriver(logger *slog.Logger) *LogMotionDriver {
	return &LogMotionDriver{logger: logger}
}

func (d *LogMotionDriver) Move(_ context.Context, direction string) error {
	d.logger.Info("motion: move", "direction", direction)
	return nil
}

func (d *LogMotionDriver) Gesture(_ context.Context, gesture string) error {
	d.logger.Info("motion: gesture", "gesture", gesture)
	return nil
}

func (d *LogMotionDriver) StartPatrol(_ context.Context) error {
	d.logger.Info("motion: patrol started")
	return nil
}

func (d *LogMotionDriver) EndPatrol(_ context.Context) error {
	d.logger.Info("motion: patrol ended")
	return nil
}

// StubCamera fabricates photo paths and random embeddings of the configured
// dimension, enough to exercise enrollment end to end without a camera.
type StubCamera struct {
	dim int
	rng *rand.Rand
}

func NewStubCamera(dim int) *StubCamera {
	return &StubCamera{dim: dim, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *StubCamera) CapturePhoto(_ context.Context) (string, error) {
	return fmt.Sprintf("/var/lib/bondhu/photos/%d.jpg", time.Now().Unix()), nil
}

func (c *StubCamera) CaptureEmbedding(_ context.Context) ([]float32, error) {
	emb := make([]float32, c.dim)
	for i := range emb {
		emb[i] = c.rng.Float32()
	}
	return emb, nil
}

// ReadUtterances feeds stdin lines to submit until the reader ends or ctx is
// canceled. Language is detected from the script of the line.
func ReadUtterances(ctx context.Context, r io.Reader, submit func(intent.Utterance)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		submit(intent.Utterance{
			Text:      text,
			Language:  DetectLanguage(text),
			Timestamp: time.Now(),
		})
	}
}

// DetectLanguage tags a line as Bangla when it contains any Bengali-script
// rune, otherwise English. The speech collaborator does this properly on the
// robot; this is only for console input.
func DetectLanguage(text string) intent.Language {
	for _, r := range text {
		if r >= 0x0980 && r <= 0x09FF {
			return intent.LangBangla
		}
	}
	return intent.LangEnglish
}
