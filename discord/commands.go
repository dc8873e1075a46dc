package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"titlebot/titlecase"
)

const (
	titlecaseCommand = "titlecase"
	textOption       = "text"

	// Discord rejects message content longer than this
	maxContentLength = 2000
)

// Commands returns the slash commands the bot registers
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        titlecaseCommand,
			Description: "Convert text to title case",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        textOption,
					Description: "The text to convert",
					Required:    true,
				},
			},
		},
	}
}

// commandResponse builds the response to an application command interaction
func commandResponse(data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, error) {
	switch data.Name {
	case titlecaseCommand:
		var text string
		for _, opt := range data.Options {
			if opt.Name == textOption && opt.Type == discordgo.ApplicationCommandOptionString {
				text = opt.StringValue()
			}
		}
		return messageResponse(titlecaseReply(text)), nil
	default:
		return nil, fmt.Errorf("unknown command %q", data.Name)
	}
}

// titlecaseReply returns the message content answering a request to title-case text
func titlecaseReply(text string) string {
	title := titlecase.String(text)
	if title == "" {
		return "Nothing to title-case."
	}
	return truncate(title)
}

func messageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

// truncate shortens content to fit in a single discord message
func truncate(content string) string {
	if len(content) <= maxContentLength {
		return content
	}
	cut := strings.ToValidUTF8(content[:maxContentLength-len("…")], "")
	return cut + "…"
}
