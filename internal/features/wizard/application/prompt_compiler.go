package application

import (
	"encoding/json"
	"fmt"
	"strings"

	catalog "promptcraft/backend/internal/features/catalog/domain"
	"promptcraft/backend/internal/features/wizard/domain"
)

// PlaceholderPrompt is returned until both a purpose and a style are chosen.
const PlaceholderPrompt = "请在左侧完成选择以生成提示词..."

const noComponentsLine = "- (暂无特定组件要求，请自由发挥)\n"

type jsonPromptStyle struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	PrimaryColor string `json:"primaryColor"`
}

type jsonPrompt struct {
	Role         string          `json:"role"`
	Task         string          `json:"task"`
	Project      string          `json:"project"`
	Style        jsonPromptStyle `json:"style"`
	Components   []string        `json:"components"`
	Requirements []string        `json:"requirements"`
}

// CompilePrompt renders the prompt for state. It has no side effects and the
// same inputs always produce the same bytes.
func CompilePrompt(state domain.WizardState, cat *catalog.Catalog) string {
	purpose, okP := cat.Purpose(state.PurposeID)
	style, okS := cat.Style(state.StyleID)
	if !okP || !okS {
		return PlaceholderPrompt
	}

	var list strings.Builder
	for _, id := range state.Components {
		comp, ok := cat.Component(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&list, "- %s: %s\n", comp.Name, comp.Description)
	}
	if list.Len() == 0 {
		list.WriteString(noComponentsLine)
	}

	switch state.OutputFormat {
	case domain.FormatJSON:
		return renderJSON(purpose, style, state)
	case domain.FormatText:
		return fmt.Sprintf("作为一名专业UI设计师，请为【%s】设计一套界面。风格采用【%s】（%s），主色调为 %s。\n\n需要包含以下组件：\n%s\n请确保设计是响应式的，并且符合现代设计趋势，注重用户体验细节。",
			purpose.Title, style.Title, style.Description, state.PrimaryColor, list.String())
	default:
		return renderMarkdown(purpose, style, state.PrimaryColor, list.String())
	}
}

func renderJSON(purpose catalog.Purpose, style catalog.Style, state domain.WizardState) string {
	obj := jsonPrompt{
		Role:    "UI/UX Designer",
		Task:    "Create High-Fidelity Mockup",
		Project: purpose.Title,
		Style: jsonPromptStyle{
			Name:         style.Title,
			Description:  style.Description,
			PrimaryColor: state.PrimaryColor,
		},
		Components:   append([]string{}, state.Components...),
		Requirements: []string{"Responsive", "WCAG 2.1 AA", "Modern Grid Layout"},
	}
	// Only strings and slices of strings; marshalling cannot fail.
	b, _ := json.MarshalIndent(obj, "", "  ")
	return string(b)
}

func renderMarkdown(purpose catalog.Purpose, style catalog.Style, color, list string) string {
	var b strings.Builder
	b.WriteString("# UI 设计需求文档\n\n")
	b.WriteString("## 1. 项目概述\n")
	fmt.Fprintf(&b, "为 **%s** 设计一套专业的用户界面。\n", purpose.Title)
	fmt.Fprintf(&b, "- **设计风格**: %s\n", style.Title)
	fmt.Fprintf(&b, "- **风格特征**: %s\n", style.Description)
	fmt.Fprintf(&b, "- **主色调**: %s\n\n", color)
	b.WriteString("## 2. 核心组件要求\n")
	b.WriteString("请确保设计包含以下功能模块，并保持视觉一致性：\n")
	b.WriteString(list)
	b.WriteString("\n## 3. 设计要求\n")
	b.WriteString("- **响应式**: 必须完美适配桌面端和移动端。\n")
	b.WriteString("- **可访问性**: 符合 WCAG 2.1 AA 标准，保证足够的对比度。\n")
	b.WriteString("- **交互**: 为关键操作（如按钮悬停、点击）设计细腻的微交互反馈。\n")
	b.WriteString("- **布局**: 使用现代网格系统，保持充足的留白，避免信息过载。\n\n")
	b.WriteString("---\n")
	b.WriteString("*请基于以上需求，生成高保真的 UI 设计图或可直接使用的 HTML/CSS 代码框架。*")
	return b.String()
}
