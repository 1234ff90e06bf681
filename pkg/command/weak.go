package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
)

type weakResponder struct {
	typeAutocompleter
	emojis Emojis
}

func (resp weakResponder) Handle(
	ctx context.Context,
	r *matchup.Resolver,
	interaction *discordgo.InteractionCreate,
	opt *typeOptions,
) (*discordgo.InteractionResponseData, error) {
	sel, err := opt.selection()
	if err != nil {
		return userError(err)
	}

	def, err := r.ResolveDefense(sel)
	if err != nil {
		return userError(fmt.Errorf("error while getting defense for %s: %w", sel, err))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       selectionTitle(sel, resp.emojis),
				Description: "Defensive type chart",
				Fields:      defenseFields(def, resp.emojis),
			},
		},
	}, nil
}

func (builder *Builder) weak() Command {
	resp := weakResponder{
		typeAutocompleter: typeAutocompleter{autocompleteLimit: builder.autocompleteLimit},
		emojis:            builder.emojis,
	}

	return command[typeOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View type chart against a defending type combination.",
			Options:     typeCommandOptions("defending"),
		},
	}
}
