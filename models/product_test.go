package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecsListDecodesPairList(t *testing.T) {
	data := []byte(`[{"key":"Length","value":"4.8 m"},{"key":"Beam","value":"2.05 m"}]`)

	var specs SpecsList
	require.NoError(t, json.Unmarshal(data, &specs))

	require.Len(t, specs, 2)
	assert.Equal(t, SpecEntry{Key: "Length", Value: "4.8 m"}, specs[0])
	assert.Equal(t, SpecEntry{Key: "Beam", Value: "2.05 m"}, specs[1])
}

func TestSpecsListUpgradesLegacyObject(t *testing.T) {
	data := []byte(`{"Length":"4.8 m","Beam":"2.05 m","Weight":"420 kg"}`)

	var specs SpecsList
	require.NoError(t, json.Unmarshal(data, &specs))

	// Legacy objects carry no order; keys are sorted for a stable form
	require.Len(t, specs, 3)
	assert.Equal(t, "Beam", specs[0].Key)
	assert.Equal(t, "Length", specs[1].Key)
	assert.Equal(t, "Weight", specs[2].Key)
	assert.Equal(t, "420 kg", specs[2].Value)
}

func TestSpecsListRejectsScalar(t *testing.T) {
	var specs SpecsList
	assert.Error(t, json.Unmarshal([]byte(`"not specs"`), &specs))
}

func TestEquipmentListDecodesGroupsAndBareStrings(t *testing.T) {
	data := []byte(`[
		{"header":"Deck","items":["Navigation lights","Rod holders"]},
		"Bilge pump",
		{"header":"","items":[]},
		""
	]`)

	var equipment EquipmentList
	require.NoError(t, json.Unmarshal(data, &equipment))

	require.Len(t, equipment, 2)
	assert.Equal(t, "Deck", equipment[0].Header)
	assert.Equal(t, []string{"Navigation lights", "Rod holders"}, equipment[0].Items)
	assert.Equal(t, EquipmentGroup{Items: []string{"Bilge pump"}}, equipment[1])
}

func TestParseRawOptionsKeepsValidOptions(t *testing.T) {
	raw := []RawOption{
		{
			Name:     "Engine",
			Type:     "radio",
			Required: true,
			Choices:  json.RawMessage(`[{"label":"40 hp","price":0},{"label":"60 hp","price":2400}]`),
		},
	}

	options := ParseRawOptions(raw)

	require.Len(t, options, 1)
	assert.Equal(t, "Engine", options[0].Name)
	assert.True(t, options[0].Required)
	require.Len(t, options[0].Choices, 2)
	assert.Equal(t, 2400.0, options[0].Choices[1].Price)
}

func TestParseRawOptionsDropsInvalidOptions(t *testing.T) {
	raw := []RawOption{
		{Name: "", Type: "radio", Choices: json.RawMessage(`[]`)},
		{Name: "Rig", Type: "dropdown", Choices: json.RawMessage(`[]`)},
		{Name: "Extras", Type: "checkbox", Choices: json.RawMessage(`{"label":"GPS"}`)},
		{Name: "Extras", Type: "checkbox", Choices: json.RawMessage(`not json`)},
		{Name: "Color", Type: "radio", Choices: json.RawMessage(`[{"label":"White","price":0}]`)},
	}

	options := ParseRawOptions(raw)

	// A bad option is dropped whole, never partially recovered
	require.Len(t, options, 1)
	assert.Equal(t, "Color", options[0].Name)
}

func TestFindOptionAndChoice(t *testing.T) {
	product := Product{
		Options: OptionsList{
			{Name: "Color", Type: "radio", Choices: []Choice{{Label: "Blue", Price: 50}}},
		},
	}

	option := product.FindOption("Color")
	require.NotNil(t, option)
	assert.Nil(t, product.FindOption("Paint"))

	choice := option.FindChoice("Blue")
	require.NotNil(t, choice)
	assert.Equal(t, 50.0, choice.Price)
	assert.Nil(t, option.FindChoice("Red"))
}
