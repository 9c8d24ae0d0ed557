package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedValueDecodesRadioLabel(t *testing.T) {
	var v SelectedValue
	require.NoError(t, json.Unmarshal([]byte(`"Blue"`), &v))

	assert.False(t, v.Multi)
	assert.Equal(t, "Blue", v.Label)
	assert.Nil(t, v.Labels)
}

func TestSelectedValueDecodesCheckboxLabels(t *testing.T) {
	var v SelectedValue
	require.NoError(t, json.Unmarshal([]byte(`["GPS","Radio"]`), &v))

	assert.True(t, v.Multi)
	assert.Equal(t, []string{"GPS", "Radio"}, v.Labels)
	assert.Empty(t, v.Label)
}

func TestSelectedValueRejectsOtherShapes(t *testing.T) {
	var v SelectedValue
	assert.Error(t, json.Unmarshal([]byte(`{"label":"Blue"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
}

func TestSelectedValueRoundTrips(t *testing.T) {
	payload := []byte(`{"Color":"Blue","Extras":["GPS","Radio"],"None":[]}`)

	var selected SelectedOptions
	require.NoError(t, json.Unmarshal(payload, &selected))

	encoded, err := json.Marshal(selected)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(encoded))
}
