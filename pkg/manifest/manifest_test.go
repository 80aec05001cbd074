package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "manifest_version": 3,
  "name": "TransLex",
  "version": "1.2.0",
  "action": {
    "default_popup": "popup.html",
    "default_icon": {
      "16": "old/icon16.png"
    }
  },
  "icons": {
    "16": "old/icon16.png",
    "32": "old/icon32.png"
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))
	return path
}

func TestManifest_ShouldLoadDeclaredIcons(t *testing.T) {
	assert := assert.New(t)

	m, err := Load(writeSample(t))
	require.NoError(t, err)

	icons := m.Icons()
	assert.Equal("old/icon16.png", icons["16"])
	assert.Equal("old/icon32.png", icons["32"])
}

func TestManifest_ShouldFailOnMissingOrMalformedFile(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(err)

	bad := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1, 2, 3]"), 0o644))
	_, err = Load(bad)
	assert.Error(err)
}

func TestManifest_ShouldSyncIconsAndActionIcon(t *testing.T) {
	assert := assert.New(t)

	path := writeSample(t)
	m, err := Load(path)
	require.NoError(t, err)

	m.SyncIcons("icons", []int{16, 48, 128})
	require.NoError(t, m.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var round struct {
		Name   string            `json:"name"`
		Icons  map[string]string `json:"icons"`
		Action struct {
			DefaultPopup string            `json:"default_popup"`
			DefaultIcon  map[string]string `json:"default_icon"`
		} `json:"action"`
	}
	require.NoError(t, json.Unmarshal(data, &round))

	want := map[string]string{
		"16":  "icons/icon16.png",
		"48":  "icons/icon48.png",
		"128": "icons/icon128.png",
	}
	assert.Equal(want, round.Icons)
	assert.Equal(want, round.Action.DefaultIcon)

	// Untouched fields must survive the round trip.
	assert.Equal("TransLex", round.Name)
	assert.Equal("popup.html", round.Action.DefaultPopup)
}

func TestManifest_ShouldWarnOnBothDirectionsOfMismatch(t *testing.T) {
	assert := assert.New(t)

	m, err := Load(writeSample(t))
	require.NoError(t, err)

	warnings := m.Validate([]int{16, 48, 128})
	assert.Equal([]string{
		"manifest declares a 32px icon that was not generated",
		"generated 48px icon is not declared in the manifest",
		"generated 128px icon is not declared in the manifest",
	}, warnings)
}

func TestManifest_ShouldValidateCleanlyWhenInSync(t *testing.T) {
	path := writeSample(t)
	m, err := Load(path)
	require.NoError(t, err)

	m.SyncIcons("icons", []int{16, 48, 128})
	assert.Empty(t, m.Validate([]int{16, 48, 128}))
}
