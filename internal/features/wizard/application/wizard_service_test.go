package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "promptcraft/backend/internal/features/catalog/domain"
	"promptcraft/backend/internal/features/wizard/domain"
	"promptcraft/backend/internal/storage"
)

type recordedToast struct {
	kind    string
	message string
}

type fakeNotifier struct {
	toasts []recordedToast
}

func (n *fakeNotifier) Success(m string) { n.toasts = append(n.toasts, recordedToast{"success", m}) }
func (n *fakeNotifier) Error(m string)   { n.toasts = append(n.toasts, recordedToast{"error", m}) }

func newTestService(t *testing.T) (*WizardService, storage.Store, *fakeNotifier) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	n := &fakeNotifier{}
	return NewWizardService(context.Background(), catalog.Default(), store, n), store, n
}

func persisted(t *testing.T, store storage.Store) domain.WizardState {
	t.Helper()
	data, ok, err := store.Get(context.Background(), StateKey)
	require.NoError(t, err)
	require.True(t, ok, "state should be persisted")
	var st domain.WizardState
	require.NoError(t, json.Unmarshal(data, &st))
	return st
}

func TestNewWizardServiceDefaults(t *testing.T) {
	s, _, _ := newTestService(t)

	v := s.View()
	assert.Equal(t, domain.DefaultState(), v.State)
	assert.Equal(t, PlaceholderPrompt, v.Prompt)
	assert.Equal(t, "选择设计目的", v.StepTitle)
}

func TestAdvanceStepRequiresPurpose(t *testing.T) {
	s, store, n := newTestService(t)
	ctx := context.Background()

	v, err := s.AdvanceStep(ctx)
	require.ErrorIs(t, err, ErrPurposeRequired)
	assert.Equal(t, 1, v.State.Step)
	require.Len(t, n.toasts, 1)
	assert.Equal(t, recordedToast{"error", "请先选择一个设计目的"}, n.toasts[0])

	_, ok, err := store.Get(ctx, StateKey)
	require.NoError(t, err)
	assert.False(t, ok, "a failed gate does not persist")
}

func TestAdvanceStepRequiresStyle(t *testing.T) {
	s, _, n := newTestService(t)
	ctx := context.Background()

	_, err := s.SelectPurpose(ctx, "dashboard")
	require.NoError(t, err)
	v, err := s.AdvanceStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v.State.Step)

	v, err = s.AdvanceStep(ctx)
	require.ErrorIs(t, err, ErrStyleRequired)
	assert.Equal(t, 2, v.State.Step)
	require.Len(t, n.toasts, 1)
	assert.Equal(t, "error", n.toasts[0].kind)
}

func TestAdvanceStepAtLastStepSignalsReady(t *testing.T) {
	s, store, n := newTestService(t)
	ctx := context.Background()

	_, _ = s.SelectPurpose(ctx, "dashboard")
	_, _ = s.AdvanceStep(ctx)
	_, _ = s.SelectStyle(ctx, "material")
	v, err := s.AdvanceStep(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, v.State.Step)

	v, err = s.AdvanceStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v.State.Step)
	require.Len(t, n.toasts, 1)
	assert.Equal(t, recordedToast{"success", "提示词已准备就绪！"}, n.toasts[0])
	assert.Equal(t, 3, persisted(t, store).Step)
}

func TestRetreatStepFloorsAtOne(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, _ = s.SelectPurpose(ctx, "blog")
	_, _ = s.AdvanceStep(ctx)

	v, err := s.RetreatStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.State.Step)

	v, err = s.RetreatStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.State.Step)
}

func TestSelectStyleOverwritesColor(t *testing.T) {
	s, store, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.SetColor(ctx, "#123456")
	require.NoError(t, err)
	v, err := s.SelectStyle(ctx, "brutalist")
	require.NoError(t, err)
	assert.Equal(t, "#FF5722", v.State.PrimaryColor)

	_, err = s.SetColor(ctx, "#abcdef")
	require.NoError(t, err)
	v, err = s.SelectStyle(ctx, "material")
	require.NoError(t, err)
	assert.Equal(t, "#6750A4", v.State.PrimaryColor)
	assert.Equal(t, "#6750A4", persisted(t, store).PrimaryColor)
}

func TestSelectRejectsUnknownIDs(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.SelectPurpose(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownPurpose)
	_, err = s.SelectStyle(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownStyle)
	_, err = s.ToggleComponent(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownComponent)
	_, err = s.SetOutputFormat(ctx, "yaml")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.Equal(t, domain.DefaultState(), s.Snapshot())
}

func TestToggleComponentTwiceRestoresSelection(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, _ = s.ToggleComponent(ctx, "table")
	before := s.Snapshot().Components

	v, err := s.ToggleComponent(ctx, "button")
	require.NoError(t, err)
	assert.Equal(t, []string{"table", "button"}, v.State.Components)
	assert.Equal(t, 2, v.Summary.ComponentCount)

	v, err = s.ToggleComponent(ctx, "button")
	require.NoError(t, err)
	assert.ElementsMatch(t, before, v.State.Components)
}

func TestPromptRecompiledOnEveryMutation(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	_, _ = s.SelectPurpose(ctx, "dashboard")
	assert.Equal(t, PlaceholderPrompt, s.Prompt())

	v, _ := s.SelectStyle(ctx, "material")
	assert.Contains(t, v.Prompt, "Material V3")
	assert.Equal(t, "数据仪表盘", v.Summary.Purpose)

	v, _ = s.ToggleComponent(ctx, "table")
	assert.Contains(t, v.Prompt, "数据表格")

	v, _ = s.SetOutputFormat(ctx, "json")
	assert.Contains(t, v.Prompt, `"components": [`)
	assert.Equal(t, v.Prompt, CompilePrompt(s.Snapshot(), catalog.Default()))
}

func TestResetRequiresConfirmation(t *testing.T) {
	s, store, n := newTestService(t)
	ctx := context.Background()

	_, _ = s.SelectPurpose(ctx, "saas")
	_, _ = s.AdvanceStep(ctx)
	_, _ = s.SelectStyle(ctx, "playful")
	_, _ = s.ToggleComponent(ctx, "card")
	_, _ = s.SetOutputFormat(ctx, "text")

	_, err := s.Reset(ctx, false)
	require.ErrorIs(t, err, ErrResetNotConfirmed)
	assert.Equal(t, "saas", s.Snapshot().PurposeID)

	v, err := s.Reset(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultState(), v.State)
	assert.Equal(t, domain.DefaultState(), persisted(t, store))
	assert.Equal(t, recordedToast{"success", "已重置"}, n.toasts[len(n.toasts)-1])
}

func TestStateSurvivesRestart(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	s := NewWizardService(ctx, catalog.Default(), store, &fakeNotifier{})
	_, _ = s.SelectPurpose(ctx, "mobile")
	_, _ = s.AdvanceStep(ctx)
	_, _ = s.SelectStyle(ctx, "apple")
	_, _ = s.ToggleComponent(ctx, "bottom-nav")

	restored := NewWizardService(ctx, catalog.Default(), store, &fakeNotifier{})
	assert.Equal(t, s.Snapshot(), restored.Snapshot())
	assert.Equal(t, s.Prompt(), restored.Prompt())
}

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, StateKey, []byte("{not json")))

	s := NewWizardService(ctx, catalog.Default(), store, &fakeNotifier{})
	assert.Equal(t, domain.DefaultState(), s.Snapshot())
}

func TestRestoreDropsComponentsMissingFromCatalog(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	blob := `{"step":3,"purpose":"dashboard","style":"material","components":["gone-widget","table"],"promptFormat":"json"}`
	require.NoError(t, store.Put(ctx, StateKey, []byte(blob)))

	s := NewWizardService(ctx, catalog.Default(), store, &fakeNotifier{})
	assert.Equal(t, []string{"table"}, s.Snapshot().Components)
	assert.NotContains(t, s.Prompt(), "gone-widget")

	v, err := s.ToggleComponent(ctx, "table")
	require.NoError(t, err)
	assert.Empty(t, v.State.Components)
}

func TestRestoreEnforcesStepGates(t *testing.T) {
	tests := []struct {
		name        string
		blob        string
		wantStep    int
		wantPurpose string
		wantStyle   string
	}{
		{"no purpose", `{"step":3}`, 1, "", ""},
		{"no style", `{"step":3,"purpose":"dashboard"}`, 2, "dashboard", ""},
		{"unknown purpose", `{"step":2,"purpose":"gone","style":"material"}`, 1, "", "material"},
		{"unknown style", `{"step":3,"purpose":"dashboard","style":"gone"}`, 2, "dashboard", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.NewFileStore(t.TempDir())
			require.NoError(t, err)
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, StateKey, []byte(tt.blob)))

			st := NewWizardService(ctx, catalog.Default(), store, &fakeNotifier{}).Snapshot()
			assert.Equal(t, tt.wantStep, st.Step)
			assert.Equal(t, tt.wantPurpose, st.PurposeID)
			assert.Equal(t, tt.wantStyle, st.StyleID)
		})
	}
}
