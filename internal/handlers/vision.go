package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// Camera is the vision collaborator boundary. Detection and embedding
// computation happen on the collaborator's side.
type Camera interface {
	CapturePhoto(ctx context.Context) (path string, err error)
	CaptureEmbedding(ctx context.Context) ([]float32, error)
}

// VisionHandler takes photos and runs the face-registration flow.
type VisionHandler struct {
	camera Camera
	store  *store.Store
}

func NewVisionHandler(camera Camera, st *store.Store) *VisionHandler {
	return &VisionHandler{camera: camera, store: st}
}

func (h *VisionHandler) ID() ID { return Vision }

func (h *VisionHandler) Handle(ctx context.Context, req *Request) (*Result, error) {
	if req.Intent.Type == intent.RegisterFace {
		return h.registerFace(ctx, req)
	}
	return h.capturePhoto(ctx, req)
}

func (h *VisionHandler) capturePhoto(ctx context.Context, req *Request) (*Result, error) {
	path, err := h.camera.CapturePhoto(ctx)
	if err != nil {
		return nil, fmt.Errorf("capturing photo: %w", err)
	}

	lang := req.Language()
	selfie := req.Intent.Slot(intent.SlotTarget) == "self"
	var response string
	switch {
	case lang == intent.LangBangla && selfie:
		response = fmt.Sprintf("আপনার ছবি তোলা হয়েছে! ছবিটি %s এ সংরক্ষিত হয়েছে।", path)
	case lang == intent.LangBangla:
		response = fmt.Sprintf("ছবি তোলা হয়েছে! %s এ সংরক্ষিত হয়েছে।", path)
	case selfie:
		response = fmt.Sprintf("Your photo has been taken! Saved to %s.", path)
	default:
		response = fmt.Sprintf("Photo taken! Saved to %s.", path)
	}
	return &Result{Response: response}, nil
}

// registerFace enrolls the speaker. Without a name slot it asks for one and
// lets the task manager feed the next utterance back as the name.
func (h *VisionHandler) registerFace(ctx context.Context, req *Request) (*Result, error) {
	name := req.Intent.Slot(intent.SlotName)
	lang := req.Language()

	if name == "" {
		prompt := "What name should I remember you by?"
		if lang == intent.LangBangla {
			prompt = "আপনাকে কী নামে মনে রাখবো?"
		}
		return &Result{Response: prompt, AwaitSlot: intent.SlotName}, nil
	}

	embedding, err := h.camera.CaptureEmbedding(ctx)
	if err != nil {
		return nil, fmt.Errorf("capturing face embedding: %w", err)
	}

	role := store.RoleUnknown
	if req.Person != nil {
		// Re-registration keeps the existing role assignment.
		role = req.Person.Role
	}

	person, err := h.store.UpsertPerson(ctx, store.RegisterPersonInput{
		Name:         name,
		Role:         role,
		Embedding:    embedding,
		LanguagePref: lang,
	})
	if err != nil {
		return nil, fmt.Errorf("registering person: %w", err)
	}

	var response string
	if lang == intent.LangBangla {
		response = fmt.Sprintf("ধন্যবাদ, %s! আমি আপনাকে মনে রাখবো।", person.Name)
	} else {
		response = fmt.Sprintf("Thank you, %s! I'll remember you.", person.Name)
	}
	return &Result{Response: response}, nil
}
