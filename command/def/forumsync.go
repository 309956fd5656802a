package def

import "github.com/bwmarrin/discordgo"

var ForumSyncCommand = &discordgo.ApplicationCommand{
	Name:        "forum-sync",
	Description: "募集フォーラムのスレッドを Notion に取り込みます（管理者用）",
}
