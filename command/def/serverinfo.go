package def

import "github.com/bwmarrin/discordgo"

var ServerInfoCommand = &discordgo.ApplicationCommand{
	Name:        "serverinfo",
	Description: "サーバーの情報を表示します",
}
