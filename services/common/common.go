package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/ledgerService"
)

func IsAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}

	// Interactions carry the member's resolved permissions in the channel.
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if s == nil {
		return false
	}

	for _, roleID := range i.Member.Roles {
		role, err := s.State.Role(i.GuildID, roleID)
		if err != nil || role == nil {
			roles, err := s.GuildRoles(i.GuildID)
			if err != nil {
				continue
			}
			for _, r := range roles {
				if r.ID == roleID {
					role = r
					break
				}
			}
			if role == nil {
				continue
			}
		}

		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// UserID returns the id of whoever triggered the interaction, in a guild or
// in DMs.
func UserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func RespondUnauthorized(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return Respond(s, i, "You are not authorized to use this command.")
}

// SendError answers the interaction with a message fit for the user and
// records anything that is not the user's own mistake in the error log.
func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, app *App) {
	kind := ledgerService.KindOf(err)

	guildID := ""
	command := ""
	if i != nil {
		guildID = i.GuildID
		command = commandName(i)
	}

	if IsUserError(err) {
		app.Log.Debug("request rejected", zap.String("command", command), zap.String("kind", kind.String()), zap.Error(err))
	} else {
		app.Log.Error("request failed", zap.String("guild_id", guildID), zap.String("command", command), zap.Error(err))
		errLog := models.ErrorLog{
			GuildID: guildID,
			Command: command,
			Kind:    kind.String(),
			Message: err.Error(),
		}
		if dbErr := app.DB.Create(&errLog).Error; dbErr != nil {
			app.Log.Error("could not record error", zap.Error(dbErr))
		}
	}

	if i == nil || s == nil {
		return
	}
	if localErr := Respond(s, i, UserMessage(err)); localErr != nil {
		app.Log.Warn("could not send error response", zap.Error(localErr))
	}
}

func commandName(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	}
	return ""
}

// FormatOdds renders decimal odds with two places, e.g. 1.15 or 2.00.
func FormatOdds(odds float64) string {
	return decimal.NewFromFloat(odds).StringFixed(2)
}

func GetUsernameFromUser(user *discordgo.User) string {
	if user == nil {
		return "Unknown User"
	}
	username := user.GlobalName
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return "Unknown User"
	}
	return username
}

// Mention formats a Discord user mention.
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}
