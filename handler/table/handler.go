// Package table は卓登録フローの Discord 側ハンドラ。
// 判断は workflow に任せ、ここでは応答の描画と Notion への書き込みだけを行う。
package table

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"takubot/handler"
	"takubot/notion"
	"takubot/workflow"
)

var (
	machine    *workflow.Machine
	notionSvc  *notion.Service
	maxMembers int
)

const commitTimeout = 30 * time.Second

// RegisterHandlers wires the table-registration flow into the interaction router.
func RegisterHandlers(m *workflow.Machine, svc *notion.Service, maxPick int) {
	machine = m
	notionSvc = svc
	maxMembers = maxPick

	handler.AddCommandHandler("taku", TakuCommandHandler)
	handler.AddModalHandler(ModalID, ModalSubmitHandler)
	handler.AddComponentHandler(selectGMPrefix, selectionHandler(workflow.RoleGM))
	handler.AddComponentHandler(selectPLPrefix, selectionHandler(workflow.RolePL))
	handler.AddComponentHandler(confirmPrefix, ConfirmHandler)
	handler.AddComponentHandler(cancelPrefix, CancelHandler)
}

// TakuCommandHandler は /taku に応答して登録フォームを開く
func TakuCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, BuildRegistrationModal()); err != nil {
		zap.S().Errorw("登録フォームの表示に失敗", "error", err)
	}
}

// ModalSubmitHandler は登録フォームの送信を受けて確認ビューを出す
func ModalSubmitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	var tableName, dateText string
	for _, component := range data.Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			textInput, ok := comp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch textInput.CustomID {
			case inputNameID:
				tableName = strings.TrimSpace(textInput.Value)
			case inputDateID:
				dateText = textInput.Value
			}
		}
	}

	eff := machine.Handle(workflow.ModalSubmitted{
		UserID:    interactionUserID(i),
		TableName: tableName,
		DateText:  dateText,
	})
	applyEffect(s, i, eff)
}

// selectionHandler は GM/PL セレクトの変更を下書きに反映する
func selectionHandler(role workflow.Role) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !checkComponentOwner(s, i) {
			return
		}
		eff := machine.Handle(workflow.SelectionChanged{
			UserID:    interactionUserID(i),
			Role:      role,
			MemberIDs: i.MessageComponentData().Values,
		})
		applyEffect(s, i, eff)
	}
}

// ConfirmHandler は確定ボタンを処理する
func ConfirmHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !checkComponentOwner(s, i) {
		return
	}
	eff := machine.Handle(workflow.ConfirmClicked{UserID: interactionUserID(i)})
	applyEffect(s, i, eff)
}

// CancelHandler はキャンセルボタンを処理する
func CancelHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !checkComponentOwner(s, i) {
		return
	}
	eff := machine.Handle(workflow.CancelClicked{UserID: interactionUserID(i)})
	applyEffect(s, i, eff)
}

// applyEffect は状態遷移の結果を Discord 応答に写す
func applyEffect(s *discordgo.Session, i *discordgo.InteractionCreate, eff workflow.Effect) {
	switch e := eff.(type) {
	case workflow.ShowConfirmation:
		respond(s, i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: BuildConfirmationView(e.Draft, maxMembers),
		})
	case workflow.RejectInput:
		ephemeralReply(s, i, "❌ "+e.Message)
	case workflow.RejectSession:
		ephemeralReply(s, i, "❌ "+e.Message)
	case workflow.AckSelection:
		// 表示は変えず受理だけ返す
		respond(s, i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
	case workflow.CommitDraft:
		executeCommit(s, i, e)
	case workflow.AckCancelled:
		respond(s, i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    "登録をキャンセルしました",
				Flags:      discordgo.MessageFlagsEphemeral,
				Components: []discordgo.MessageComponent{},
			},
		})
	}
}

// executeCommit は確定した下書きを Notion に書き込み、結果を返信する
func executeCommit(s *discordgo.Session, i *discordgo.InteractionCreate, commit workflow.CommitDraft) {
	// Notion への書き込みは時間がかかるので応答を保留する
	respond(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	if missing := notionSvc.MissingConfig(); len(missing) > 0 {
		followup(s, i, &discordgo.WebhookParams{
			Content: "❌ " + notion.MissingConfigMessage(missing),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return
	}

	chCtx := ResolveChannelContext(s, i)
	gmNames := resolveMemberNames(s, i.GuildID, commit.Draft.GMIDs)
	plNames := resolveMemberNames(s, i.GuildID, commit.Draft.PLIDs)

	pageURL, err := notionSvc.CommitSession(ctx, commit.Draft, chCtx, gmNames, plNames)
	if err != nil {
		zap.S().Errorw("卓の登録に失敗", "table", commit.Draft.TableName, "error", err)
		followup(s, i, &discordgo.WebhookParams{
			Content: "❌ " + notion.UserMessage(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return
	}

	followup(s, i, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{BuildSuccessEmbed(commit.Draft, gmNames, plNames, pageURL)},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// checkComponentOwner は custom id に埋めた所有者と操作者が一致するか確認する
func checkComponentOwner(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 2 {
		return false
	}
	if interactionUserID(i) != parts[1] {
		ephemeralReply(s, i, "❌ 他の人の登録フローは操作できません")
		return false
	}
	return true
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		zap.S().Errorw("インタラクション応答に失敗", "error", err)
	}
}

func ephemeralReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	respond(s, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func followup(s *discordgo.Session, i *discordgo.InteractionCreate, params *discordgo.WebhookParams) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		zap.S().Errorw("フォローアップ送信に失敗", "error", err)
	}
}
