package handlers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bondhu-robotics/bondhu/internal/intent"
	"github.com/bondhu-robotics/bondhu/internal/store"
)

// SchoolHandler covers school duties: patrol rounds and attendance records.
type SchoolHandler struct {
	driver MotionDriver
	store  *store.Store

	mu         sync.Mutex
	patrolling bool
}

func NewSchoolHandler(driver MotionDriver, st *store.Store) *SchoolHandler {
	return &SchoolHandler{driver: driver, store: st}
}

func (h *SchoolHandler) ID() ID { return School }

func (h *SchoolHandler) Handle(ctx context.Context, req *Request) (*Result, error) {
	switch req.Intent.Type {
	case intent.StartPatrol:
		return h.startPatrol(ctx, req.Language())
	case intent.EndPatrol:
		return h.endPatrol(ctx, req.Language())
	default:
		return h.recordAttendance(ctx, req)
	}
}

func (h *SchoolHandler) startPatrol(ctx context.Context, lang intent.Language) (*Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.patrolling {
		if lang == intent.LangBangla {
			return &Result{Response: "আমি ইতিমধ্যে টহল দিচ্ছি।"}, nil
		}
		return &Result{Response: "I'm already on patrol."}, nil
	}
	if err := h.driver.StartPatrol(ctx); err != nil {
		return nil, fmt.Errorf("starting patrol: %w", err)
	}
	h.patrolling = true

	if lang == intent.LangBangla {
		return &Result{Response: "ঠিক আছে, আমি টহল শুরু করছি। স্কুলের করিডোর ঘুরে দেখবো।"}, nil
	}
	return &Result{Response: "Okay, starting patrol. I'll make rounds through the corridors."}, nil
}

func (h *SchoolHandler) endPatrol(ctx context.Context, lang intent.Language) (*Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.patrolling {
		if lang == intent.LangBangla {
			return &Result{Response: "আমি এখন টহল দিচ্ছি না।"}, nil
		}
		return &Result{Response: "I'm not patrolling right now."}, nil
	}
	if err := h.driver.EndPatrol(ctx); err != nil {
		return nil, fmt.Errorf("ending patrol: %w", err)
	}
	h.patrolling = false

	if lang == intent.LangBangla {
		return &Result{Response: "টহল শেষ করছি। সব কিছু স্বাভাবিক ছিল।"}, nil
	}
	return &Result{Response: "Ending patrol. Everything looked normal."}, nil
}

// recordAttendance marks the named person present. An unknown name is a
// spoken explanation, not an error, so the dispatch loop stays on its
// happy path.
func (h *SchoolHandler) recordAttendance(ctx context.Context, req *Request) (*Result, error) {
	lang := req.Language()
	name := req.Intent.Slot(intent.SlotName)
	if name == "" {
		prompt := "Whose attendance should I record?"
		if lang == intent.LangBangla {
			prompt = "কার উপস্থিতি রেকর্ড করবো?"
		}
		return &Result{Response: prompt, AwaitSlot: intent.SlotName}, nil
	}

	person, err := h.store.FindPersonByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}
	if person == nil {
		if lang == intent.LangBangla {
			return &Result{Response: fmt.Sprintf("দুঃখিত, %s নামে কাউকে চিনি না। আগে তাকে নিবন্ধন করতে হবে।", name)}, nil
		}
		return &Result{Response: fmt.Sprintf("Sorry, I don't know anyone named %s. They need to be registered first.", name)}, nil
	}

	var recordedBy *uuid.UUID
	if req.Person != nil {
		recordedBy = &req.Person.ID
	}
	if err := h.store.RecordAttendance(ctx, person.ID, "present", recordedBy); err != nil {
		return nil, fmt.Errorf("recording attendance for %q: %w", name, err)
	}

	if lang == intent.LangBangla {
		return &Result{Response: fmt.Sprintf("%s এর উপস্থিতি রেকর্ড করা হয়েছে।", person.Name)}, nil
	}
	return &Result{Response: fmt.Sprintf("Attendance recorded for %s.", person.Name)}, nil
}
