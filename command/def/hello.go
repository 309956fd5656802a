package def

import "github.com/bwmarrin/discordgo"

var HelloCommand = &discordgo.ApplicationCommand{
	Name:        "hello",
	Description: "挨拶をします",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "挨拶する相手を選択（省略可能）",
			Required:    false,
		},
	},
}
