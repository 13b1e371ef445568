package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

type fakeCamera struct {
	path      string
	embedding []float32
	err       error
}

func (c *fakeCamera) CapturePhoto(context.Context) (string, error) {
	return c.path, c.err
}

func (c *fakeCamera) CaptureEmbedding(context.Context) ([]float32, error) {
	return c.embedding, c.err
}

func TestVision_CapturePhoto(t *testing.T) {
	h := NewVisionHandler(&fakeCamera{path: "/tmp/photo1.jpg"}, nil)

	req := &Request{Intent: intent.Intent{
		Type:     intent.CapturePhoto,
		Language: intent.LangEnglish,
		Slots:    map[string]string{intent.SlotTarget: "general"},
	}}
	res, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Photo taken! Saved to /tmp/photo1.jpg.", res.Response)
	assert.Empty(t, res.AwaitSlot)
}

func TestVision_Selfie(t *testing.T) {
	h := NewVisionHandler(&fakeCamera{path: "/tmp/selfie.jpg"}, nil)

	req := &Request{Intent: intent.Intent{
		Type:     intent.CapturePhoto,
		Language: intent.LangBangla,
		Slots:    map[string]string{intent.SlotTarget: "self"},
	}}
	res, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, res.Response, "আপনার ছবি")
	assert.Contains(t, res.Response, "/tmp/selfie.jpg")
}

func TestVision_CameraFailure(t *testing.T) {
	h := NewVisionHandler(&fakeCamera{err: errors.New("no camera")}, nil)

	req := &Request{Intent: intent.Intent{Type: intent.CapturePhoto, Language: intent.LangEnglish}}
	_, err := h.Handle(context.Background(), req)
	require.Error(t, err)
}

func TestVision_RegisterWithoutNameAsksForIt(t *testing.T) {
	h := NewVisionHandler(&fakeCamera{}, nil)

	req := &Request{Intent: intent.Intent{
		Type:       intent.RegisterFace,
		Language:   intent.LangEnglish,
		Confidence: intent.ConfidenceDowngrade,
	}}
	res, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, intent.SlotName, res.AwaitSlot)
	assert.Equal(t, "What name should I remember you by?", res.Response)

	req.Intent.Language = intent.LangBangla
	res, err = h.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, intent.SlotName, res.AwaitSlot)
	assert.Contains(t, res.Response, "নামে")
}
