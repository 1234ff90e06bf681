package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/notjagan/typechart/pkg/model"
)

const noneValue = "_None_"

func joinLabels(names []string, emojis Emojis) string {
	if len(names) == 0 {
		return noneValue
	}

	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = emojis.Label(name)
	}

	return strings.Join(labels, " ")
}

func offenseFields(off matchup.Offense, emojis Emojis) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:  model.CategorySuperEffective.Title(),
			Value: joinLabels(off.SuperEffective, emojis),
		},
		{
			Name:  model.CategoryNotVeryEffective.Title(),
			Value: joinLabels(off.NotVeryEffective, emojis),
		},
		{
			Name:  model.CategoryNoEffect.Title(),
			Value: joinLabels(off.NoEffect, emojis),
		},
	}
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	weak         string
	doubleWeak   string
	immune       string
}

var defenseNames = efficacyNames{
	doubleStrong: "Weaknesses (4x)",
	strong:       "Weaknesses (2x)",
	weak:         "Resistances (0.5x)",
	doubleWeak:   "Resistances (0.25x)",
	immune:       "Immunities",
}

// defenseFields splits the defense lists by combined factor. Sections that
// can only occur for dual types are left out when empty.
func defenseFields(def matchup.Defense, emojis Emojis) []*discordgo.MessageEmbedField {
	doubleStrengths := make([]string, 0, len(def.WeakTo))
	strengths := make([]string, 0, len(def.WeakTo))
	for _, name := range def.WeakTo {
		if def.Factors[name] == model.DoubleSuperEffective {
			doubleStrengths = append(doubleStrengths, name)
		} else {
			strengths = append(strengths, name)
		}
	}

	weaks := make([]string, 0, len(def.Resists))
	doubleWeaks := make([]string, 0, len(def.Resists))
	for _, name := range def.Resists {
		if def.Factors[name] == model.DoubleNotVeryEffective {
			doubleWeaks = append(doubleWeaks, name)
		} else {
			weaks = append(weaks, name)
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, 5)
	if len(doubleStrengths) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  defenseNames.doubleStrong,
			Value: joinLabels(doubleStrengths, emojis),
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  defenseNames.strong,
		Value: joinLabels(strengths, emojis),
	})
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  defenseNames.weak,
		Value: joinLabels(weaks, emojis),
	})
	if len(doubleWeaks) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  defenseNames.doubleWeak,
			Value: joinLabels(doubleWeaks, emojis),
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  defenseNames.immune,
		Value: joinLabels(def.ImmuneTo, emojis),
	})

	return fields
}

func selectionTitle(sel matchup.Selection, emojis Emojis) string {
	if sel.IsEmpty() {
		return "No type selected"
	}

	names := sel.Names()
	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = emojis.Label(name)
	}

	return strings.Join(labels, " ")
}
