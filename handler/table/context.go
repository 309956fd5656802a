package table

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"takubot/model"
)

// ResolveChannelContext はインタラクション発生地点のチャンネル/スレッド情報を集める。
// 取得に失敗しても ID だけは残す（登録自体は止めない）
func ResolveChannelContext(s *discordgo.Session, i *discordgo.InteractionCreate) model.ChannelContext {
	chCtx := model.ChannelContext{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	}

	ch, err := s.Channel(i.ChannelID)
	if err != nil {
		zap.S().Warnw("チャンネル情報の取得に失敗", "channel", i.ChannelID, "error", err)
		return chCtx
	}

	if ch.IsThread() {
		chCtx.ThreadID = ch.ID
		chCtx.ThreadName = ch.Name
		chCtx.ChannelID = ch.ParentID

		if parent, err := s.Channel(ch.ParentID); err == nil {
			chCtx.ChannelName = parent.Name
		} else {
			zap.S().Warnw("親チャンネル情報の取得に失敗", "channel", ch.ParentID, "error", err)
		}
		return chCtx
	}

	chCtx.ChannelName = ch.Name
	return chCtx
}

// resolveMemberNames はメンバーIDを表示名に引き当てる。
// 取得できなかったものは ID のまま使う
func resolveMemberNames(s *discordgo.Session, guildID string, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		member, err := s.GuildMember(guildID, id)
		if err != nil || member == nil {
			zap.S().Warnw("メンバー情報の取得に失敗", "user", id, "error", err)
			names = append(names, id)
			continue
		}
		names = append(names, displayName(member))
	}
	return names
}

func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		if m.User.GlobalName != "" {
			return m.User.GlobalName
		}
		return m.User.Username
	}
	return ""
}
