package domain

import (
	"fmt"
)

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	// RoleError marks a failed assistant reply. It is shown to the user but
	// never sent back to the model.
	RoleError Role = "error"
)

// ParseRole accepts only the three known roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleModel, RoleError:
		return r, nil
	default:
		return "", fmt.Errorf("invalid chat role: %q", s)
	}
}

// UnmarshalText rejects unknown roles so a tampered log fails to load.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Conversational reports whether messages with this role are forwarded to
// the model as history.
func (r Role) Conversational() bool {
	return r == RoleUser || r == RoleModel
}

// ChatMessage is one immutable entry in the chat log. Timestamp is in Unix
// milliseconds.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ChatContext is the wizard snapshot the assistant is told about.
type ChatContext struct {
	PurposeTitle     string `json:"purpose"`
	StyleTitle       string `json:"style"`
	StyleDescription string `json:"styleDesc"`
	PrimaryColor     string `json:"primaryColor"`
	Components       string `json:"components"`
}

const (
	notSelected = "未选择"
	none        = "无"
)

const systemInstructionTemplate = `你是一名专业的UI/UX设计专家。请基于以下设计上下文提供建议：

设计目的: %s
设计风格: %s
风格特征: %s
主色调: %s
选中组件: %s

请用专业但易懂的语言回答，提供具体可行的建议。回答应简洁明了，重点突出。`

// BuildSystemInstruction renders the assistant's system instruction.
func BuildSystemInstruction(c ChatContext) string {
	return fmt.Sprintf(systemInstructionTemplate,
		orDefault(c.PurposeTitle, notSelected),
		orDefault(c.StyleTitle, notSelected),
		orDefault(c.StyleDescription, none),
		c.PrimaryColor,
		orDefault(c.Components, none),
	)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
