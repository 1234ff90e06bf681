package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/notjagan/typechart/pkg/model"
)

const (
	invalidSelectionMessage = "Please enter a valid type combination."
	unknownTypeMessage      = "No type found with that name."
)

type typeOptions struct {
	Name1 discordField[string]  `option:"type_1"`
	Name2 *discordField[string] `option:"type_2"`
}

func (opt *typeOptions) selection() (matchup.Selection, error) {
	var second string
	if opt.Name2 != nil {
		second = opt.Name2.Value
	}

	return matchup.NewSelection(opt.Name1.Value, second)
}

func (opt *typeOptions) focused() (string, error) {
	switch {
	case opt.Name1.Focused:
		return opt.Name1.Value, nil
	case opt.Name2 != nil && opt.Name2.Focused:
		return opt.Name2.Value, nil
	default:
		return "", fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}
}

func typeCommandOptions(verb string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "type_1",
			Description:  fmt.Sprintf("Primary %s type", verb),
			Required:     true,
			Autocomplete: true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "type_2",
			Description:  fmt.Sprintf("Secondary %s type", verb),
			Required:     false,
			Autocomplete: true,
		},
	}
}

// userError turns a rejected selection into a message for the user. Any
// other error is returned unchanged.
func userError(err error) (*discordgo.InteractionResponseData, error) {
	switch {
	case errors.Is(err, matchup.ErrInvalidSelection):
		return &discordgo.InteractionResponseData{
			Content: invalidSelectionMessage,
			Flags:   discordgo.MessageFlagsEphemeral,
		}, nil
	case errors.Is(err, model.ErrUnknownType):
		return &discordgo.InteractionResponseData{
			Content: unknownTypeMessage,
			Flags:   discordgo.MessageFlagsEphemeral,
		}, nil
	default:
		return nil, err
	}
}

func typeChoices(r *matchup.Resolver, prefix string, limit int) []*discordgo.ApplicationCommandOptionChoice {
	names := r.Table().Search(prefix, limit)

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(names))
	for i, name := range names {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		}
	}

	return choices
}

type typeAutocompleter struct {
	autocompleteLimit int
}

func (ac typeAutocompleter) Autocomplete(
	ctx context.Context,
	r *matchup.Resolver,
	interaction *discordgo.InteractionCreate,
	opt *typeOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	prefix, err := opt.focused()
	if err != nil {
		return nil, err
	}

	return typeChoices(r, prefix, ac.autocompleteLimit), nil
}
