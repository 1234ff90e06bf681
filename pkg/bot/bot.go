package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/command"
	"github.com/notjagan/typechart/pkg/config"
	"github.com/notjagan/typechart/pkg/matchup"
)

type Bot struct {
	config   config.Config
	session  *discordgo.Session
	resolver *matchup.Resolver
	commands map[string]command.Command
}

func New(cfg config.Config, resolver *matchup.Resolver) *Bot {
	return &Bot{
		config:   cfg,
		resolver: resolver,
		commands: make(map[string]command.Command),
	}
}

func (bot *Bot) Close() {
	log.Println("Shutting down.")
	if bot.session == nil {
		return
	}

	err := bot.session.Close()
	if err != nil {
		log.Printf("error while closing discord session: %v", err)
	}
}

var ErrNoMatchingCommand = errors.New("no matching command")

func (bot *Bot) command(name string) (command.Command, error) {
	cmd, ok := bot.commands[name]
	if !ok {
		return nil, fmt.Errorf("could not find command %q: %w", name, ErrNoMatchingCommand)
	}

	return cmd, nil
}

func (bot *Bot) emojis() (command.Emojis, error) {
	guildID := bot.config.Discord.EmojiGuild
	if guildID == "" {
		return command.Emojis{}, nil
	}

	emojis, err := bot.session.GuildEmojis(guildID)
	if err != nil {
		return nil, fmt.Errorf("could not get emojis for resource guild %q: %w", guildID, err)
	}

	return command.NewEmojis(emojis), nil
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	emojis, err := bot.emojis()
	if err != nil {
		return fmt.Errorf("error while loading type emojis: %w", err)
	}
	bot.addCommands(command.NewBuilder(bot.config, emojis).Build())

	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		err := bot.dispatch(ctx, sess, interaction)
		if err != nil {
			log.Printf("error while handling interaction: %v", err)
		}
	})

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	err := bot.initialize(ctx)
	if err != nil {
		bot.Close()
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	log.Println("Hosting type chart bot.")
	defer bot.Close()
	<-ctx.Done()

	return nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		name := interaction.ApplicationCommandData().Name
		cmd, err := bot.command(name)
		if err != nil {
			return err
		}

		log.Printf("COMMAND %q in GUILD %q", name, interaction.GuildID)
		return cmd.Handle(ctx, bot.resolver, sess, interaction)

	case discordgo.InteractionApplicationCommandAutocomplete:
		cmd, err := bot.command(interaction.ApplicationCommandData().Name)
		if err != nil {
			return err
		}

		return cmd.Autocomplete(ctx, bot.resolver, sess, interaction)

	case discordgo.InteractionMessageComponent:
		name, state, err := command.SplitCustomID(interaction.MessageComponentData().CustomID)
		if err != nil {
			return fmt.Errorf("error while reading button: %w", err)
		}

		cmd, err := bot.command(name)
		if err != nil {
			return err
		}

		log.Printf("BUTTON %q in GUILD %q", name, interaction.GuildID)
		return cmd.Button(ctx, bot.resolver, sess, interaction, state)

	default:
		return fmt.Errorf("unexpected interaction type %v: %w", interaction.Type, command.ErrUnrecognizedInteraction)
	}
}

func (bot *Bot) addCommands(cmds []command.Command) {
	for _, cmd := range cmds {
		bot.commands[cmd.Name()] = cmd
	}
}

func (bot *Bot) register(cmd command.Command) error {
	_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %q: %w", cmd.Name(), err)
	}

	return nil
}

func (bot *Bot) registerCommands() error {
	for _, cmd := range bot.commands {
		err := bot.register(cmd)
		if err != nil {
			return fmt.Errorf("failed to register command %q: %w", cmd.Name(), err)
		}
	}

	return nil
}
