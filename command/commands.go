package command

import (
	"takubot/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.PingCommand,
	def.HelloCommand,
	def.ServerInfoCommand,
	def.TakuCommand,
	def.ForumSyncCommand,
}
