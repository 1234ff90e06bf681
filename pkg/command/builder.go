package command

import (
	"github.com/notjagan/typechart/pkg/config"
)

type commandFunc func(*Builder) Command

type Builder struct {
	funcs             []commandFunc
	emojis            Emojis
	autocompleteLimit int
}

func NewBuilder(cfg config.Config, emojis Emojis) *Builder {
	limit := cfg.Discord.AutocompleteLimit
	switch {
	case limit <= 0:
		limit = config.DefaultAutocompleteLimit
	case limit > config.MaxAutocompleteLimit:
		limit = config.MaxAutocompleteLimit
	}

	return &Builder{
		funcs: []commandFunc{
			(*Builder).weak,
			(*Builder).coverage,
			(*Builder).matchup,
		},
		emojis:            emojis,
		autocompleteLimit: limit,
	}
}

func (builder *Builder) Build() []Command {
	cmds := make([]Command, len(builder.funcs))
	for i, f := range builder.funcs {
		cmds[i] = f(builder)
	}

	return cmds
}
