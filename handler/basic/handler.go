// Package basic は疎通確認系のコマンド（ping / hello / serverinfo）。
package basic

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"takubot/handler"
)

// RegisterHandlers wires the basic commands into the interaction router.
func RegisterHandlers() {
	handler.AddCommandHandler("ping", PingHandler)
	handler.AddCommandHandler("hello", HelloHandler)
	handler.AddCommandHandler("serverinfo", ServerInfoHandler)
}

// PingHandler はゲートウェイのレイテンシを返す
func PingHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	reply(s, i, fmt.Sprintf("🏓 Pong! レイテンシ: %dms", latency))
}

// HelloHandler は挨拶する。user オプションがあればその相手に
func HelloHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if u := opt.UserValue(s); u != nil {
				target = u.Mention()
			}
		}
	}
	if target == "" {
		if i.Member != nil && i.Member.User != nil {
			target = i.Member.User.Mention()
		}
	}
	reply(s, i, fmt.Sprintf("👋 こんにちは、%sさん！", target))
}

// ServerInfoHandler はサーバー情報の埋め込みを返す
func ServerInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
	}
	if err != nil {
		zap.S().Errorw("サーバー情報の取得に失敗", "guild", i.GuildID, "error", err)
		reply(s, i, "❌ サーバー情報を取得できませんでした")
		return
	}

	createdAt, _ := discordgo.SnowflakeTimestamp(guild.ID)

	embed := &discordgo.MessageEmbed{
		Title: "📊 サーバー情報",
		Color: 0x0099FF,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: guild.IconURL(""),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏷️ サーバー名", Value: guild.Name, Inline: true},
			{Name: "👥 メンバー数", Value: strconv.Itoa(guild.MemberCount), Inline: true},
			{Name: "📅 作成日", Value: createdAt.Format("2006年01月02日"), Inline: true},
			{Name: "🎭 ロール数", Value: strconv.Itoa(len(guild.Roles)), Inline: true},
			{Name: "📺 チャンネル数", Value: strconv.Itoa(len(guild.Channels)), Inline: true},
		},
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		zap.S().Errorw("serverinfo の応答に失敗", "error", err)
	}
}

func reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}); err != nil {
		zap.S().Errorw("コマンド応答に失敗", "error", err)
	}
}
