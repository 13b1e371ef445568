package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

func schoolRequest(typ intent.Type, lang intent.Language) *Request {
	return &Request{Intent: intent.Intent{Type: typ, Language: lang}}
}

func TestSchool_PatrolLifecycle(t *testing.T) {
	driver := &fakeDriver{}
	h := NewSchoolHandler(driver, nil)
	ctx := context.Background()

	res, err := h.Handle(ctx, schoolRequest(intent.StartPatrol, intent.LangEnglish))
	require.NoError(t, err)
	assert.Contains(t, res.Response, "starting patrol")
	assert.True(t, driver.patrol)

	// Starting again does not restart the round.
	res, err = h.Handle(ctx, schoolRequest(intent.StartPatrol, intent.LangEnglish))
	require.NoError(t, err)
	assert.Equal(t, "I'm already on patrol.", res.Response)

	res, err = h.Handle(ctx, schoolRequest(intent.EndPatrol, intent.LangEnglish))
	require.NoError(t, err)
	assert.Contains(t, res.Response, "Ending patrol")
	assert.False(t, driver.patrol)

	res, err = h.Handle(ctx, schoolRequest(intent.EndPatrol, intent.LangEnglish))
	require.NoError(t, err)
	assert.Equal(t, "I'm not patrolling right now.", res.Response)
}

func TestSchool_PatrolBangla(t *testing.T) {
	driver := &fakeDriver{}
	h := NewSchoolHandler(driver, nil)
	ctx := context.Background()

	res, err := h.Handle(ctx, schoolRequest(intent.StartPatrol, intent.LangBangla))
	require.NoError(t, err)
	assert.Contains(t, res.Response, "টহল শুরু")

	res, err = h.Handle(ctx, schoolRequest(intent.EndPatrol, intent.LangBangla))
	require.NoError(t, err)
	assert.Contains(t, res.Response, "টহল শেষ")
}

func TestSchool_AttendanceWithoutNameAsksForIt(t *testing.T) {
	h := NewSchoolHandler(&fakeDriver{}, nil)

	res, err := h.Handle(context.Background(), schoolRequest(intent.RecordAttendance, intent.LangEnglish))
	require.NoError(t, err)
	assert.Equal(t, intent.SlotName, res.AwaitSlot)
	assert.Equal(t, "Whose attendance should I record?", res.Response)
}
