package command

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/config"
	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/notjagan/typechart/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T) *matchup.Resolver {
	t.Helper()

	table, err := model.Default()
	require.NoError(t, err)

	return matchup.New(table)
}

func stringOption(name, value string, focused bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: focused,
	}
}

func TestDecodeOptions(t *testing.T) {
	t.Run("both types", func(t *testing.T) {
		var opt typeOptions
		err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			stringOption("type_1", "Fire", false),
			stringOption("type_2", "Water", true),
		}, &opt)
		require.NoError(t, err)

		assert.Equal(t, "Fire", opt.Name1.Value)
		require.NotNil(t, opt.Name2)
		assert.Equal(t, "Water", opt.Name2.Value)
		assert.True(t, opt.Name2.Focused)
	})

	t.Run("optional type missing", func(t *testing.T) {
		var opt typeOptions
		err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			stringOption("type_1", "Fire", false),
		}, &opt)
		require.NoError(t, err)
		assert.Nil(t, opt.Name2)

		sel, err := opt.selection()
		require.NoError(t, err)
		assert.Equal(t, matchup.Selection{Primary: "Fire"}, sel)
	})

	t.Run("unexpected option", func(t *testing.T) {
		var opt typeOptions
		err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			stringOption("type_3", "Fire", false),
		}, &opt)
		assert.ErrorIs(t, err, ErrDecodeOption)
	})

	t.Run("wrong option type", func(t *testing.T) {
		var opt typeOptions
		err := decodeOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "type_1", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		}, &opt)
		assert.ErrorIs(t, err, ErrDecodeOption)
	})
}

func TestCustomID(t *testing.T) {
	id := CustomID("matchup", "Fire||Water")

	name, state, err := SplitCustomID(id)
	require.NoError(t, err)
	assert.Equal(t, "matchup", name)
	assert.Equal(t, "Fire||Water", state)

	_, _, err = SplitCustomID("garbage")
	assert.ErrorIs(t, err, ErrUnrecognizedInteraction)
}

func TestWeakResponder(t *testing.T) {
	r := testResolver(t)
	resp := weakResponder{emojis: Emojis{}}

	t.Run("dual type", func(t *testing.T) {
		body, err := resp.Handle(context.Background(), r, nil, &typeOptions{
			Name1: discordField[string]{Value: "Ground"},
			Name2: &discordField[string]{Value: "Flying"},
		})
		require.NoError(t, err)
		require.Len(t, body.Embeds, 1)

		embed := body.Embeds[0]
		assert.Equal(t, "**Ground** **Flying**", embed.Title)
		require.Len(t, embed.Fields, 4)
		assert.Equal(t, "Weaknesses (4x)", embed.Fields[0].Name)
		assert.Equal(t, "**Ice**", embed.Fields[0].Value)
		assert.Equal(t, "Weaknesses (2x)", embed.Fields[1].Name)
		assert.Equal(t, "**Water**", embed.Fields[1].Value)
		assert.Equal(t, "Resistances (0.5x)", embed.Fields[2].Name)
		assert.Equal(t, "**Fighting** **Poison** **Bug**", embed.Fields[2].Value)
		assert.Equal(t, "Immunities", embed.Fields[3].Name)
		assert.Equal(t, "**Electric** **Ground**", embed.Fields[3].Value)
	})

	t.Run("same type twice", func(t *testing.T) {
		body, err := resp.Handle(context.Background(), r, nil, &typeOptions{
			Name1: discordField[string]{Value: "Fire"},
			Name2: &discordField[string]{Value: "Fire"},
		})
		require.NoError(t, err)
		assert.Equal(t, invalidSelectionMessage, body.Content)
		assert.Empty(t, body.Embeds)
	})

	t.Run("unknown type", func(t *testing.T) {
		body, err := resp.Handle(context.Background(), r, nil, &typeOptions{
			Name1: discordField[string]{Value: "Unobtainium"},
		})
		require.NoError(t, err)
		assert.Equal(t, unknownTypeMessage, body.Content)
	})
}

func TestCoverageResponder(t *testing.T) {
	r := testResolver(t)
	resp := coverageResponder{emojis: NewEmojis([]*discordgo.Emoji{{ID: "1", Name: "ghost"}})}

	body, err := resp.Handle(context.Background(), r, nil, &typeOptions{
		Name1: discordField[string]{Value: "Normal"},
		Name2: &discordField[string]{Value: "Fighting"},
	})
	require.NoError(t, err)
	require.Len(t, body.Embeds, 1)

	fields := body.Embeds[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "Super effective", fields[0].Name)
	assert.Equal(t, "**Normal** **Ice** **Rock** **Dark** **Steel**", fields[0].Value)
	assert.Equal(t, "Not very effective", fields[1].Name)
	assert.Equal(t, noneValue, fields[1].Value)
	assert.Equal(t, "No effect", fields[2].Name)
	assert.Equal(t, "<:ghost:1>", fields[2].Value)
}

func TestTypeAutocompleter(t *testing.T) {
	r := testResolver(t)
	ac := typeAutocompleter{autocompleteLimit: 1}

	choices, err := ac.Autocomplete(context.Background(), r, nil, &typeOptions{
		Name1: discordField[string]{Value: "Fire"},
		Name2: &discordField[string]{Value: "gr", Focused: true},
	})
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, "Grass", choices[0].Name)
	assert.Equal(t, "Grass", choices[0].Value)

	_, err = ac.Autocomplete(context.Background(), r, nil, &typeOptions{})
	assert.ErrorIs(t, err, ErrCommandFormat)
}

func buttonIDs(t *testing.T, body *discordgo.InteractionResponseData) map[string]string {
	t.Helper()

	ids := make(map[string]string)
	for _, comp := range body.Components {
		row, ok := comp.(discordgo.ActionsRow)
		require.True(t, ok)
		for _, c := range row.Components {
			button, ok := c.(discordgo.Button)
			require.True(t, ok)
			ids[button.Label] = button.CustomID
		}
	}
	return ids
}

func TestMatchupResponder(t *testing.T) {
	r := testResolver(t)
	resp := matchupResponder{name: "matchup", emojis: Emojis{}}

	body, err := resp.Handle(context.Background(), r, nil, &pickerOptions{})
	require.NoError(t, err)
	require.Len(t, body.Embeds, 2)
	assert.Equal(t, "No type selected", body.Embeds[0].Title)
	assert.Len(t, body.Components, 5)

	press := func(body *discordgo.InteractionResponseData, label string) *discordgo.InteractionResponseData {
		t.Helper()

		id, ok := buttonIDs(t, body)[label]
		require.True(t, ok, label)

		name, state, err := SplitCustomID(id)
		require.NoError(t, err)
		assert.Equal(t, "matchup", name)

		next, err := resp.Button(context.Background(), r, nil, state)
		require.NoError(t, err)
		return next
	}

	body = press(body, "Ground")
	assert.Equal(t, "**Ground**", body.Embeds[0].Title)

	body = press(body, "Flying")
	assert.Equal(t, "**Ground** **Flying**", body.Embeds[0].Title)
	assert.Equal(t, "Weaknesses (4x)", body.Embeds[1].Fields[0].Name)

	body = press(body, "Ground")
	assert.Equal(t, "**Flying**", body.Embeds[0].Title)

	body = press(body, "Clear")
	assert.Equal(t, "No type selected", body.Embeds[0].Title)
}

func TestMatchupResponder_BadState(t *testing.T) {
	r := testResolver(t)
	resp := matchupResponder{name: "matchup", emojis: Emojis{}}

	for _, state := range []string{"Fire", "1|2", "x|-|3", "-|-|18", "-|-|-1"} {
		_, err := resp.Button(context.Background(), r, nil, state)
		assert.ErrorIs(t, err, ErrUnrecognizedInteraction, state)
	}
}

func TestTapState(t *testing.T) {
	names := []string{"Normal", "Shadow|Realm", strings.Repeat("Long", 40)}
	index := map[string]int{names[0]: 0, names[1]: 1, names[2]: 2}

	tests := []struct {
		name  string
		state tapState
		want  string
	}{
		{
			name:  "separator in name",
			state: tapState{Selection: matchup.Selection{Primary: names[1]}, Tap: names[0]},
			want:  "1|-|0",
		},
		{
			name:  "long names",
			state: tapState{Selection: matchup.Selection{Primary: names[0], Secondary: names[2]}, Tap: names[1]},
			want:  "0|2|1",
		},
		{
			name:  "clear",
			state: tapState{Tap: matchup.NoneName},
			want:  "-|-|-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.state.encode(index)
			assert.Equal(t, tt.want, encoded)
			assert.LessOrEqual(t, len(CustomID("matchup", encoded)), 100)

			decoded, err := decodeTapState(encoded, names)
			require.NoError(t, err)
			assert.Equal(t, tt.state, *decoded)
		})
	}
}

func TestBuilder(t *testing.T) {
	var cfg config.Config
	cmds := NewBuilder(cfg, Emojis{}).Build()

	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name()
		assert.Equal(t, cmd.Name(), cmd.ApplicationCommand().Name)
	}
	assert.Equal(t, []string{"weak", "coverage", "matchup"}, names)
}

func TestBuilder_AutocompleteLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: config.DefaultAutocompleteLimit},
		{limit: 5, want: 5},
		{limit: 30, want: config.MaxAutocompleteLimit},
	}

	for _, tt := range tests {
		var cfg config.Config
		cfg.Discord.AutocompleteLimit = tt.limit
		assert.Equal(t, tt.want, NewBuilder(cfg, Emojis{}).autocompleteLimit, "limit %d", tt.limit)
	}
}
