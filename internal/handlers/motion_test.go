package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

type fakeDriver struct {
	moves    []string
	gestures []string
	patrol   bool
	failNext error
}

func (d *fakeDriver) Move(_ context.Context, direction string) error {
	if d.failNext != nil {
		return d.failNext
	}
	d.moves = append(d.moves, direction)
	return nil
}

func (d *fakeDriver) Gesture(_ context.Context, gesture string) error {
	if d.failNext != nil {
		return d.failNext
	}
	d.gestures = append(d.gestures, gesture)
	return nil
}

func (d *fakeDriver) StartPatrol(context.Context) error {
	if d.failNext != nil {
		return d.failNext
	}
	d.patrol = true
	return nil
}

func (d *fakeDriver) EndPatrol(context.Context) error {
	if d.failNext != nil {
		return d.failNext
	}
	d.patrol = false
	return nil
}

func moveRequest(direction string, lang intent.Language) *Request {
	slots := map[string]string{}
	if direction != "" {
		slots[intent.SlotDirection] = direction
	}
	return &Request{Intent: intent.Intent{Type: intent.Move, Language: lang, Slots: slots}}
}

func TestMotion_Move(t *testing.T) {
	driver := &fakeDriver{}
	h := NewMotionHandler(driver)

	res, err := h.Handle(context.Background(), moveRequest("forward", intent.LangEnglish))
	require.NoError(t, err)
	assert.Equal(t, []string{"forward"}, driver.moves)
	assert.Equal(t, "Okay, moving forward.", res.Response)

	res, err = h.Handle(context.Background(), moveRequest("left", intent.LangBangla))
	require.NoError(t, err)
	assert.Equal(t, []string{"forward", "left"}, driver.moves)
	assert.Equal(t, "ঠিক আছে, আমি বামে ঘুরছি।", res.Response)
}

func TestMotion_Gestures(t *testing.T) {
	driver := &fakeDriver{}
	h := NewMotionHandler(driver)

	_, err := h.Handle(context.Background(), moveRequest("wave", intent.LangEnglish))
	require.NoError(t, err)
	_, err = h.Handle(context.Background(), moveRequest("nod", intent.LangEnglish))
	require.NoError(t, err)

	assert.Equal(t, []string{"wave", "nod"}, driver.gestures)
	assert.Empty(t, driver.moves)
}

func TestMotion_NoDirectionDefaultsToWave(t *testing.T) {
	driver := &fakeDriver{}
	h := NewMotionHandler(driver)

	res, err := h.Handle(context.Background(), moveRequest("", intent.LangEnglish))
	require.NoError(t, err)
	assert.Equal(t, []string{"wave"}, driver.gestures)
	assert.Equal(t, "Okay, waving.", res.Response)
}

func TestMotion_DriverFailure(t *testing.T) {
	driver := &fakeDriver{failNext: errors.New("motor stalled")}
	h := NewMotionHandler(driver)

	_, err := h.Handle(context.Background(), moveRequest("forward", intent.LangEnglish))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "motor stalled")
}
