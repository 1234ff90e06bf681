package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Emojis maps lower-case type names to custom emojis. Types without an
// emoji are rendered as their bold name.
type Emojis map[string]*discordgo.Emoji

func NewEmojis(emojis []*discordgo.Emoji) Emojis {
	m := make(Emojis, len(emojis))
	for _, emoji := range emojis {
		m[strings.ToLower(emoji.Name)] = emoji
	}

	return m
}

func (emojis Emojis) lookup(name string) (*discordgo.Emoji, bool) {
	emoji, ok := emojis[strings.ToLower(name)]
	return emoji, ok
}

func (emojis Emojis) Label(name string) string {
	emoji, ok := emojis.lookup(name)
	if !ok {
		return fmt.Sprintf("**%s**", name)
	}

	return fmt.Sprintf("<:%s:%s>", emoji.Name, emoji.ID)
}

func (emojis Emojis) Component(name string) *discordgo.ComponentEmoji {
	emoji, ok := emojis.lookup(name)
	if !ok {
		return nil
	}

	return &discordgo.ComponentEmoji{
		Name: emoji.Name,
		ID:   emoji.ID,
	}
}
