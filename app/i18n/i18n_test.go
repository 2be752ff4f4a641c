package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Preset saved", T("en", PresetSaved))
	assert.Equal(t, "预设已保存", T("zh-CN", PresetSaved))
	assert.Equal(t, "预设已保存", T("zh-Hans", PresetSaved))
	assert.Equal(t, "Preset saved", T("en-GB", PresetSaved))
}

func TestT_Fallbacks(t *testing.T) {
	assert.Equal(t, "Preset saved", T("", PresetSaved))
	assert.Equal(t, "Preset saved", T("not a locale!", PresetSaved))
	assert.Equal(t, "Preset saved", T("fr", PresetSaved))
	assert.Equal(t, "missing.key", T("zh-CN", Key("missing.key")))
}

func TestTf(t *testing.T) {
	assert.Equal(t, `Are you sure you want to delete "web"?`, Tf("en", PresetDeleteMessage, "web"))
}

func TestTablesComplete(t *testing.T) {
	for key := range en {
		_, ok := zhCN[key]
		assert.True(t, ok, "zh-CN missing %s", key)
	}
	assert.Len(t, zhCN, len(en))
}
