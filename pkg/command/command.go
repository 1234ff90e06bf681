package command

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/notjagan/typechart/pkg/matchup"
)

type (
	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Handle(context.Context, *matchup.Resolver, *discordgo.Session, *discordgo.InteractionCreate) error
		Autocomplete(context.Context, *matchup.Resolver, *discordgo.Session, *discordgo.InteractionCreate) error
		Button(context.Context, *matchup.Resolver, *discordgo.Session, *discordgo.InteractionCreate, string) error
		Name() string
	}

	handler[T any] interface {
		Handle(context.Context, *matchup.Resolver, *discordgo.InteractionCreate, *T) (*discordgo.InteractionResponseData, error)
	}

	autocompleter[T any] interface {
		Autocomplete(context.Context, *matchup.Resolver, *discordgo.InteractionCreate, *T) ([]*discordgo.ApplicationCommandOptionChoice, error)
	}

	buttonHandler interface {
		Button(context.Context, *matchup.Resolver, *discordgo.InteractionCreate, string) (*discordgo.InteractionResponseData, error)
	}

	command[T any] struct {
		handler       handler[T]
		autocompleter autocompleter[T]
		buttons       buttonHandler
		command       discordgo.ApplicationCommand
	}
)

var (
	ErrUnrecognizedInteraction = errors.New("could not handle interaction")
	ErrCommandFormat           = errors.New("invalid command format")
)

const customIDSeparator = ":"

// CustomID prefixes button state with the name of the command that owns it.
func CustomID(cmdName string, state string) string {
	return cmdName + customIDSeparator + state
}

// SplitCustomID is the inverse of CustomID.
func SplitCustomID(id string) (string, string, error) {
	name, state, ok := strings.Cut(id, customIDSeparator)
	if !ok {
		return "", "", fmt.Errorf("custom id %q has no command prefix: %w", id, ErrUnrecognizedInteraction)
	}

	return name, state, nil
}

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return &cmd.command
}

func (cmd command[T]) Name() string {
	return cmd.command.Name
}

func (cmd command[T]) Handle(
	ctx context.Context,
	r *matchup.Resolver,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	if cmd.handler == nil {
		return fmt.Errorf("no handler for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	data := interaction.ApplicationCommandData()

	var structure T
	err := decodeOptions(data.Options, &structure)
	if err != nil {
		return fmt.Errorf("error while decoding options for command %q: %w", data.Name, err)
	}

	body, err := cmd.handler.Handle(ctx, r, interaction, &structure)
	if err != nil {
		return fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: body,
	})
	if err != nil {
		return fmt.Errorf("error while responding to command %q: %w", cmd.Name(), err)
	}

	return nil
}

func (cmd command[T]) Autocomplete(
	ctx context.Context,
	r *matchup.Resolver,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	if cmd.autocompleter == nil {
		return fmt.Errorf("no autocompletion for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var structure T
	err := decodeOptions(interaction.ApplicationCommandData().Options, &structure)
	if err != nil {
		return fmt.Errorf("error while decoding options for autocomplete: %w", err)
	}

	choices, err := cmd.autocompleter.Autocomplete(ctx, r, interaction, &structure)
	if err != nil {
		return fmt.Errorf("error while calling autocompletion handler: %w", err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		return fmt.Errorf("error while sending autocompletions: %w", err)
	}

	return nil
}

func (cmd command[T]) Button(
	ctx context.Context,
	r *matchup.Resolver,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	state string,
) error {
	if cmd.buttons == nil {
		return fmt.Errorf("no button handler for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	body, err := cmd.buttons.Button(ctx, r, interaction, state)
	if err != nil {
		return fmt.Errorf("error while calling button handler: %w", err)
	}

	err = sess.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: body,
	})
	if err != nil {
		return fmt.Errorf("failed to complete interaction: %w", err)
	}

	return nil
}

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v", err.Error())
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.Indirect(reflect.ValueOf(structure))
	if !value.CanAddr() {
		return fmt.Errorf("value is not addressable: %w", ErrDecodeOption)
	}

	m := make(map[string]reflect.Value, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		tfield := value.Type().Field(i)
		option := tfield.Tag.Get("option")
		if option == "" {
			continue
		}

		if !field.CanSet() {
			return fmt.Errorf("field %q cannot be set: %w", tfield.Name, ErrDecodeOption)
		}
		m[option] = field
	}

	for _, option := range options {
		field, ok := m[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		if field.Kind() == reflect.Pointer {
			ptr := reflect.New(field.Type().Elem())
			field.Set(ptr)

			field = ptr.Elem()
		}
		if field.Kind() == reflect.Struct && fieldTypes[field.Type()] {
			backing := field.FieldByName("Value")
			backing.Set(reflect.Zero(backing.Type()))
			focused := field.FieldByName("Focused")
			focused.SetBool(option.Focused)

			field = backing
		}

		switch option.Type {
		case discordgo.ApplicationCommandOptionString:
			if field.Kind() == reflect.String {
				field.SetString(option.StringValue())
				continue
			}
		case discordgo.ApplicationCommandOptionInteger:
			if field.Kind() == reflect.Int {
				field.SetInt(option.IntValue())
				continue
			}
		case discordgo.ApplicationCommandOptionBoolean:
			if field.Kind() == reflect.Bool {
				field.SetBool(option.BoolValue())
				continue
			}
		case discordgo.ApplicationCommandOptionSubCommand:
			if field.Kind() == reflect.Struct {
				err := decodeOptions(option.Options, field.Addr().Interface())
				if err != nil {
					return fmt.Errorf("error while decoding options for subcommand %q: %w", option.Name, err)
				}

				continue
			}
		default:
			return fmt.Errorf("unsupported type %v for option %q: %w", option.Type, option.Name, ErrDecodeOption)
		}
		return fmt.Errorf("unexpected type %v for option %q: %w", option.Type, option.Name, ErrDecodeOption)
	}

	return nil
}
