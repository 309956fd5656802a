// Package synccmd は手動のフォーラム同期コマンド。
package synccmd

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"takubot/forum"
	"takubot/handler"
	"takubot/utils"
)

var (
	syncer    *forum.Syncer
	channelID string
)

// RegisterHandlers wires the manual sync command into the interaction router.
func RegisterHandlers(s *forum.Syncer, forumChannelID string) {
	syncer = s
	channelID = forumChannelID
	handler.AddCommandHandler("forum-sync", ForumSyncHandler)
}

// ForumSyncHandler は /forum-sync を同期実行して件数を報告する。管理者のみ
func ForumSyncHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var roles []string
	userID := ""
	if i.Member != nil {
		roles = i.Member.Roles
		if i.Member.User != nil {
			userID = i.Member.User.ID
		}
	}
	if !utils.CheckAuth(userID, roles) {
		respond(s, i, "❌ このコマンドを実行する権限がありません")
		return
	}

	// 15スレッド分の照会が走るので先に応答を保留する
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		zap.S().Errorw("forum-sync の応答保留に失敗", "error", err)
		return
	}

	result := syncer.Sync(context.Background(), channelID)

	content := fmt.Sprintf("🔄 フォーラム同期が完了しました\n追加: %d / スキップ: %d / 失敗: %d",
		result.Added, result.Skipped, result.Failed)
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		zap.S().Errorw("forum-sync の結果送信に失敗", "error", err)
	}
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		zap.S().Errorw("forum-sync の応答に失敗", "error", err)
	}
}
