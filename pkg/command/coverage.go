package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
)

type coverageResponder struct {
	typeAutocompleter
	emojis Emojis
}

func (resp coverageResponder) Handle(
	ctx context.Context,
	r *matchup.Resolver,
	interaction *discordgo.InteractionCreate,
	opt *typeOptions,
) (*discordgo.InteractionResponseData, error) {
	sel, err := opt.selection()
	if err != nil {
		return userError(err)
	}

	off, err := r.ResolveOffense(sel)
	if err != nil {
		return userError(fmt.Errorf("error while getting offense for %s: %w", sel, err))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       selectionTitle(sel, resp.emojis),
				Description: "Offensive type chart",
				Fields:      offenseFields(off, resp.emojis),
			},
		},
	}, nil
}

func (builder *Builder) coverage() Command {
	resp := coverageResponder{
		typeAutocompleter: typeAutocompleter{autocompleteLimit: builder.autocompleteLimit},
		emojis:            builder.emojis,
	}

	return command[typeOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "coverage",
			Description: "View type chart for an attacking type combination.",
			Options:     typeCommandOptions("attacking"),
		},
	}
}
