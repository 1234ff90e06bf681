package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
)

const (
	buttonsPerRow = 5
	maxRows       = 5
	stateFields   = 3
	stateSep      = "|"
	emptySlot     = "-"
)

var ErrTooManyTypes = errors.New("too many types for the picker")

type pickerOptions struct{}

// tapState is what a picker button carries: the selection shown on the
// message it belongs to and the type it toggles. Types are stored as
// indices into the table so the custom ID stays short whatever the names.
type tapState struct {
	Selection matchup.Selection
	Tap       string
}

func (s tapState) encode(index map[string]int) string {
	slot := func(name string) string {
		i, ok := index[name]
		if !ok {
			return emptySlot
		}
		return strconv.Itoa(i)
	}

	return strings.Join([]string{slot(s.Selection.Primary), slot(s.Selection.Secondary), slot(s.Tap)}, stateSep)
}

func decodeTapState(state string, names []string) (*tapState, error) {
	parts := strings.Split(state, stateSep)
	if len(parts) != stateFields {
		return nil, fmt.Errorf("malformed picker state %q: %w", state, ErrUnrecognizedInteraction)
	}

	slots := make([]string, stateFields)
	for i, part := range parts {
		if part == emptySlot {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n >= len(names) {
			return nil, fmt.Errorf("bad type index %q in picker state: %w", part, ErrUnrecognizedInteraction)
		}
		slots[i] = names[n]
	}

	tap := slots[2]
	if tap == "" {
		tap = matchup.NoneName
	}

	return &tapState{
		Selection: matchup.Selection{Primary: slots[0], Secondary: slots[1]},
		Tap:       tap,
	}, nil
}

type matchupResponder struct {
	name   string
	emojis Emojis
}

func (resp matchupResponder) Handle(
	ctx context.Context,
	r *matchup.Resolver,
	interaction *discordgo.InteractionCreate,
	opt *pickerOptions,
) (*discordgo.InteractionResponseData, error) {
	return resp.render(r, matchup.Selection{})
}

func (resp matchupResponder) Button(
	ctx context.Context,
	r *matchup.Resolver,
	interaction *discordgo.InteractionCreate,
	state string,
) (*discordgo.InteractionResponseData, error) {
	s, err := decodeTapState(state, r.TypeNames())
	if err != nil {
		return nil, fmt.Errorf("error while deserializing picker state: %w", err)
	}

	return resp.render(r, matchup.ApplyTap(s.Selection, s.Tap))
}

func (resp matchupResponder) render(r *matchup.Resolver, sel matchup.Selection) (*discordgo.InteractionResponseData, error) {
	res, err := r.Resolve(sel)
	if err != nil {
		return userError(fmt.Errorf("error while resolving matchup for %s: %w", sel, err))
	}

	rows, err := resp.buttons(r, sel)
	if err != nil {
		return nil, fmt.Errorf("error while building picker: %w", err)
	}

	title := selectionTitle(sel, resp.emojis)
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: "Offensive type chart",
				Fields:      offenseFields(res.Offense, resp.emojis),
			},
			{
				Title:       title,
				Description: "Defensive type chart",
				Fields:      defenseFields(res.Defense, resp.emojis),
			},
		},
		Components: rows,
	}, nil
}

func (resp matchupResponder) buttons(r *matchup.Resolver, sel matchup.Selection) ([]discordgo.MessageComponent, error) {
	names := r.TypeNames()
	if len(names) > buttonsPerRow*(maxRows-1) {
		return nil, fmt.Errorf("%d types: %w", len(names), ErrTooManyTypes)
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	rows := make([]discordgo.MessageComponent, 0, maxRows)
	row := discordgo.ActionsRow{}
	for _, name := range names {
		style := discordgo.SecondaryButton
		if sel.Has(name) {
			style = discordgo.SuccessButton
		}

		row.Components = append(row.Components, discordgo.Button{
			Label:    name,
			Style:    style,
			Emoji:    resp.emojis.Component(name),
			CustomID: CustomID(resp.name, tapState{Selection: sel, Tap: name}.encode(index)),
		})
		if len(row.Components) == buttonsPerRow {
			rows = append(rows, row)
			row = discordgo.ActionsRow{}
		}
	}
	if len(row.Components) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Clear",
				Style:    discordgo.DangerButton,
				Disabled: sel.IsEmpty(),
				CustomID: CustomID(resp.name, tapState{Selection: sel, Tap: matchup.NoneName}.encode(index)),
			},
		},
	})

	return rows, nil
}

func (builder *Builder) matchup() Command {
	const name = "matchup"
	resp := matchupResponder{
		name:   name,
		emojis: builder.emojis,
	}

	return command[pickerOptions]{
		handler: resp,
		buttons: resp,
		command: discordgo.ApplicationCommand{
			Name:        name,
			Description: "Pick up to two types and view both type charts.",
		},
	}
}
