package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleJSON(t *testing.T) {
	var msgs []ChatMessage
	blob := `[{"id":"1","role":"user","content":"hi","timestamp":1},{"id":"2","role":"error","content":"x","timestamp":2}]`
	require.NoError(t, json.Unmarshal([]byte(blob), &msgs))
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, RoleError, msgs[1].Role)

	err := json.Unmarshal([]byte(`[{"id":"1","role":"assistant","content":"hi"}]`), &msgs)
	assert.Error(t, err)
}

func TestRoleConversational(t *testing.T) {
	assert.True(t, RoleUser.Conversational())
	assert.True(t, RoleModel.Conversational())
	assert.False(t, RoleError.Conversational())
}

func TestBuildSystemInstruction(t *testing.T) {
	got := BuildSystemInstruction(ChatContext{
		PurposeTitle:     "数据仪表盘",
		StyleTitle:       "Material V3",
		StyleDescription: "Google设计语言",
		PrimaryColor:     "#6750A4",
		Components:       "table, button",
	})
	assert.Contains(t, got, "设计目的: 数据仪表盘\n")
	assert.Contains(t, got, "设计风格: Material V3\n")
	assert.Contains(t, got, "主色调: #6750A4\n")
	assert.Contains(t, got, "选中组件: table, button\n")

	empty := BuildSystemInstruction(ChatContext{PrimaryColor: "#007AFF"})
	assert.Contains(t, empty, "设计目的: 未选择\n")
	assert.Contains(t, empty, "风格特征: 无\n")
	assert.Contains(t, empty, "选中组件: 无\n")
}
