package def

import "github.com/bwmarrin/discordgo"

var TakuCommand = &discordgo.ApplicationCommand{
	Name:        "taku",
	Description: "卓を登録します（Notion の卓一覧に追加されます）",
}
