package interactionService

import (
	"github.com/bwmarrin/discordgo"
)

type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(i *discordgo.InteractionCreate) commandOptions {
	data := i.ApplicationCommandData()
	opts := make(commandOptions, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt
	}
	return opts
}

func (o commandOptions) str(name string) (string, bool) {
	opt, ok := o[name]
	if !ok {
		return "", false
	}
	return opt.StringValue(), true
}

func (o commandOptions) integer(name string) (int64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}
	return opt.IntValue(), true
}

func (o commandOptions) number(name string) (float64, bool) {
	opt, ok := o[name]
	if !ok {
		return 0, false
	}
	return opt.FloatValue(), true
}

// user resolves a user option from the interaction's resolved data, falling
// back to a bare id.
func (o commandOptions) user(i *discordgo.InteractionCreate, name string) (*discordgo.User, bool) {
	opt, ok := o[name]
	if !ok {
		return nil, false
	}
	id, _ := opt.Value.(string)
	if id == "" {
		return nil, false
	}
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if u, ok := resolved.Users[id]; ok {
			return u, true
		}
	}
	return &discordgo.User{ID: id}, true
}
