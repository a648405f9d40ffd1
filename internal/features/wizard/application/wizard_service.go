package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	catalog "promptcraft/backend/internal/features/catalog/domain"
	notification "promptcraft/backend/internal/features/notification/application"
	"promptcraft/backend/internal/features/wizard/domain"
	"promptcraft/backend/internal/storage"
)

// StateKey is the store key of the persisted wizard snapshot.
const StateKey = "promptCraftState"

var (
	ErrPurposeRequired   = errors.New("请先选择一个设计目的")
	ErrStyleRequired     = errors.New("请先选择一种视觉风格")
	ErrResetNotConfirmed = errors.New("reset requires confirmation")
	ErrUnknownPurpose    = errors.New("unknown purpose")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrUnknownComponent  = errors.New("unknown component")
	ErrInvalidFormat     = errors.New("invalid output format")
)

const (
	msgPromptReady = "提示词已准备就绪！"
	msgReset       = "已重置"
)

// Summary is the short list of selection tags shown next to the prompt.
type Summary struct {
	Purpose        string `json:"purpose,omitempty"`
	Style          string `json:"style,omitempty"`
	ComponentCount int    `json:"componentCount"`
}

// View is the wizard state together with everything derived from it.
type View struct {
	State           domain.WizardState `json:"state"`
	Prompt          string             `json:"prompt"`
	StepTitle       string             `json:"stepTitle"`
	StepDescription string             `json:"stepDescription"`
	Progress        float64            `json:"progress"`
	Summary         Summary            `json:"summary"`
}

// WizardService owns the wizard state. Every mutation is written to the
// store and the prompt is recompiled before the call returns.
type WizardService struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	store    storage.Store
	notifier notification.Notifier

	state  domain.WizardState
	prompt string
}

// NewWizardService restores the persisted state, falling back to
// domain.DefaultState when it is missing or unreadable. Selections that no
// longer resolve against cat are dropped.
func NewWizardService(ctx context.Context, cat *catalog.Catalog, store storage.Store, notifier notification.Notifier) *WizardService {
	s := &WizardService{catalog: cat, store: store, notifier: notifier}
	s.state = s.load(ctx)
	s.prompt = CompilePrompt(s.state, cat)
	return s
}

func (s *WizardService) load(ctx context.Context) domain.WizardState {
	data, ok, err := s.store.Get(ctx, StateKey)
	if err != nil {
		log.Println("[ERROR] Failed to read wizard state, using defaults:", err)
		return domain.DefaultState()
	}
	if !ok {
		return domain.DefaultState()
	}
	state := domain.DefaultState()
	if err := json.Unmarshal(data, &state); err != nil {
		log.Println("[ERROR] Failed to parse wizard state, using defaults:", err)
		return domain.DefaultState()
	}
	state.Normalize()
	state.Reconcile(s.catalog)
	return state
}

// View returns the current state and derived prompt.
func (s *WizardService) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Snapshot returns a copy of the current state.
func (s *WizardService) Snapshot() domain.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Prompt returns the prompt compiled from the current state.
func (s *WizardService) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

func (s *WizardService) viewLocked() View {
	v := View{
		State:           s.state.Clone(),
		Prompt:          s.prompt,
		StepTitle:       domain.StepTitle(s.state.Step),
		StepDescription: domain.StepDescription(s.state.Step, s.catalog.Stats()),
		Progress:        s.state.Progress(),
		Summary:         Summary{ComponentCount: len(s.state.Components)},
	}
	if p, ok := s.catalog.Purpose(s.state.PurposeID); ok {
		v.Summary.Purpose = p.Title
	}
	if st, ok := s.catalog.Style(s.state.StyleID); ok {
		v.Summary.Style = st.Title
	}
	return v
}

// apply runs fn on a copy of the state. When fn succeeds the copy replaces
// the state, is persisted, and the prompt is recompiled.
func (s *WizardService) apply(ctx context.Context, fn func(*domain.WizardState) error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return s.viewLocked(), err
	}
	s.state = next
	s.prompt = CompilePrompt(next, s.catalog)
	s.persist(ctx)
	return s.viewLocked(), nil
}

func (s *WizardService) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Println("[ERROR] Failed to marshal wizard state:", err)
		return
	}
	if err := s.store.Put(ctx, StateKey, data); err != nil {
		log.Println("[ERROR] Failed to persist wizard state:", err)
	}
}

func (s *WizardService) SelectPurpose(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, func(st *domain.WizardState) error {
		if _, ok := s.catalog.Purpose(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPurpose, id)
		}
		st.PurposeID = id
		return nil
	})
}

// SelectStyle also resets the primary color to the style's accent color.
func (s *WizardService) SelectStyle(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, func(st *domain.WizardState) error {
		style, ok := s.catalog.Style(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, id)
		}
		st.StyleID = id
		st.PrimaryColor = style.AccentColor
		return nil
	})
}

func (s *WizardService) ToggleComponent(ctx context.Context, id string) (View, error) {
	return s.apply(ctx, func(st *domain.WizardState) error {
		if _, ok := s.catalog.Component(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownComponent, id)
		}
		st.ToggleComponent(id)
		return nil
	})
}

func (s *WizardService) SetColor(ctx context.Context, value string) (View, error) {
	return s.apply(ctx, func(st *domain.WizardState) error {
		st.PrimaryColor = strings.TrimSpace(value)
		return nil
	})
}

func (s *WizardService) SetOutputFormat(ctx context.Context, value string) (View, error) {
	return s.apply(ctx, func(st *domain.WizardState) error {
		f, err := domain.ParseOutputFormat(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, value)
		}
		st.OutputFormat = f
		return nil
	})
}

// AdvanceStep moves forward one step. Leaving step 1 needs a purpose and
// leaving step 2 needs a style; a failed gate posts one error toast and
// changes nothing. At the last step it only announces that the prompt is ready.
func (s *WizardService) AdvanceStep(ctx context.Context) (View, error) {
	ready := false
	v, err := s.apply(ctx, func(st *domain.WizardState) error {
		switch {
		case st.Step >= domain.LastStep:
			ready = true
			return errNoChange
		case st.Step == 1 && st.PurposeID == "":
			return ErrPurposeRequired
		case st.Step == 2 && st.StyleID == "":
			return ErrStyleRequired
		}
		st.Step++
		return nil
	})
	switch {
	case ready:
		s.notifier.Success(msgPromptReady)
		return v, nil
	case err != nil:
		s.notifier.Error(err.Error())
	}
	return v, err
}

// RetreatStep moves back one step, stopping at the first.
func (s *WizardService) RetreatStep(ctx context.Context) (View, error) {
	v, err := s.apply(ctx, func(st *domain.WizardState) error {
		if st.Step <= domain.FirstStep {
			return errNoChange
		}
		st.Step--
		return nil
	})
	if errors.Is(err, errNoChange) {
		return v, nil
	}
	return v, err
}

// Reset restores the default state. It does nothing unless confirmed.
func (s *WizardService) Reset(ctx context.Context, confirmed bool) (View, error) {
	if !confirmed {
		return s.View(), ErrResetNotConfirmed
	}
	v, err := s.apply(ctx, func(st *domain.WizardState) error {
		*st = domain.DefaultState()
		return nil
	})
	if err == nil {
		s.notifier.Success(msgReset)
	}
	return v, err
}

// errNoChange aborts apply without persisting; callers treat it as success.
var errNoChange = errors.New("no change")
