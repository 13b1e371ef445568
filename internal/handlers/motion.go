package handlers

import (
	"context"
	"fmt"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// MotionDriver is the motor-actuation collaborator boundary.
type MotionDriver interface {
	Move(ctx context.Context, direction string) error
	Gesture(ctx context.Context, gesture string) error
	StartPatrol(ctx context.Context) error
	EndPatrol(ctx context.Context) error
}

// MotionHandler executes movement commands through the motion collaborator.
type MotionHandler struct {
	driver MotionDriver
}

func NewMotionHandler(driver MotionDriver) *MotionHandler {
	return &MotionHandler{driver: driver}
}

func (h *MotionHandler) ID() ID { return Motion }

func (h *MotionHandler) Handle(ctx context.Context, req *Request) (*Result, error) {
	direction := req.Intent.Slot(intent.SlotDirection)

	var err error
	switch direction {
	case "wave", "nod":
		err = h.driver.Gesture(ctx, direction)
	case "forward", "backward", "left", "right":
		err = h.driver.Move(ctx, direction)
	default:
		// A matched move command with no extractable direction defaults to a
		// friendly wave, the original robot's behavior.
		direction = "wave"
		err = h.driver.Gesture(ctx, direction)
	}
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", direction, err)
	}

	return &Result{Response: moveConfirmation(direction, req.Language())}, nil
}

func moveConfirmation(direction string, lang intent.Language) string {
	if lang == intent.LangBangla {
		switch direction {
		case "forward":
			return "ঠিক আছে, আমি সামনে যাচ্ছি।"
		case "backward":
			return "ঠিক আছে, আমি পিছনে যাচ্ছি।"
		case "left":
			return "ঠিক আছে, আমি বামে ঘুরছি।"
		case "right":
			return "ঠিক আছে, আমি ডানে ঘুরছি।"
		case "nod":
			return "ঠিক আছে, মাথা নাড়ছি।"
		default:
			return "ঠিক আছে, হাত নাড়ছি।"
		}
	}
	switch direction {
	case "forward", "backward":
		return fmt.Sprintf("Okay, moving %s.", direction)
	case "left", "right":
		return fmt.Sprintf("Okay, turning %s.", direction)
	case "nod":
		return "Okay, nodding."
	default:
		return "Okay, waving."
	}
}
