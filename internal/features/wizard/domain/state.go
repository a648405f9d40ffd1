package domain

import (
	"fmt"

	catalog "promptcraft/backend/internal/features/catalog/domain"
)

// OutputFormat selects how the prompt is rendered.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
)

// ParseOutputFormat accepts only the enumerated formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatMarkdown, FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %q", s)
	}
}

const (
	FirstStep = 1
	LastStep  = 3

	DefaultPrimaryColor = "#007AFF"
)

// WizardState is the persisted wizard aggregate. The JSON keys are the
// persisted blob layout.
type WizardState struct {
	Step         int          `json:"step"`
	PurposeID    string       `json:"purpose,omitempty"`
	StyleID      string       `json:"style,omitempty"`
	PrimaryColor string       `json:"primaryColor"`
	Components   []string     `json:"components"`
	OutputFormat OutputFormat `json:"promptFormat"`
}

// DefaultState is the record restored on first load and on reset.
func DefaultState() WizardState {
	return WizardState{
		Step:         FirstStep,
		PrimaryColor: DefaultPrimaryColor,
		Components:   []string{},
		OutputFormat: FormatMarkdown,
	}
}

// Clone returns a copy that shares no memory with s.
func (s WizardState) Clone() WizardState {
	s.Components = append([]string{}, s.Components...)
	return s
}

// HasComponent reports whether id is selected.
func (s WizardState) HasComponent(id string) bool {
	for _, c := range s.Components {
		if c == id {
			return true
		}
	}
	return false
}

// ToggleComponent removes id if present, otherwise appends it.
func (s *WizardState) ToggleComponent(id string) {
	for i, c := range s.Components {
		if c == id {
			s.Components = append(s.Components[:i:i], s.Components[i+1:]...)
			return
		}
	}
	s.Components = append(s.Components, id)
}

// Normalize repairs a snapshot loaded from storage: the step is clamped,
// duplicate component ids are dropped and empty fields take their defaults.
// Unknown formats are kept; the compiler renders them as markdown.
func (s *WizardState) Normalize() {
	if s.Step < FirstStep {
		s.Step = FirstStep
	}
	if s.Step > LastStep {
		s.Step = LastStep
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = DefaultPrimaryColor
	}
	if s.OutputFormat == "" {
		s.OutputFormat = FormatMarkdown
	}
	seen := make(map[string]struct{}, len(s.Components))
	out := make([]string, 0, len(s.Components))
	for _, id := range s.Components {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	s.Components = out
}

// Reconcile drops selections the catalog cannot resolve and pulls the step
// back to the first one whose gate is not met: past step 1 needs a purpose,
// past step 2 needs a style.
func (s *WizardState) Reconcile(cat *catalog.Catalog) {
	if _, ok := cat.Purpose(s.PurposeID); !ok {
		s.PurposeID = ""
	}
	if _, ok := cat.Style(s.StyleID); !ok {
		s.StyleID = ""
	}
	kept := make([]string, 0, len(s.Components))
	for _, id := range s.Components {
		if _, ok := cat.Component(id); ok {
			kept = append(kept, id)
		}
	}
	s.Components = kept

	switch {
	case s.PurposeID == "":
		s.Step = FirstStep
	case s.StyleID == "" && s.Step > 2:
		s.Step = 2
	}
}

// Progress is the completed fraction of the wizard, in (0, 1].
func (s WizardState) Progress() float64 {
	return float64(s.Step) / float64(LastStep)
}

var stepTitles = map[int]string{
	1: "选择设计目的",
	2: "定义视觉风格",
	3: "配置功能组件",
}

func StepTitle(step int) string { return stepTitles[step] }

func StepDescription(step int, stats catalog.Stats) string {
	switch step {
	case 1:
		return "您希望构建什么样的用户界面？这将决定整体的结构布局。"
	case 2:
		return "选择一种设计语言，它将决定配色、排版和组件质感。"
	case 3:
		return fmt.Sprintf("选择页面中需要包含的关键功能模块（多选）。当前有 %d 个类别，共 %d 个组件",
			stats.TotalCategories, stats.TotalComponents)
	default:
		return ""
	}
}
