package table

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"takubot/model"
)

const (
	ModalID         = "taku_modal"
	inputNameID     = "taku_name"
	inputDateID     = "taku_date"
	selectGMPrefix  = "taku_gm"
	selectPLPrefix  = "taku_pl"
	confirmPrefix   = "taku_confirm"
	cancelPrefix    = "taku_cancel"
	maxTableNameLen = 100
)

// BuildRegistrationModal は卓登録フォームを組み立てる
func BuildRegistrationModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalID,
			Title:    "卓の登録",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    inputNameID,
							Label:       "卓名",
							Style:       discordgo.TextInputShort,
							Placeholder: "例: 第1回クトゥルフ卓",
							Required:    true,
							MaxLength:   maxTableNameLen,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    inputDateID,
							Label:       "日程",
							Style:       discordgo.TextInputShort,
							Placeholder: "YYYY-MM-DD / 6/25 / 今日 / 明日 / 来週（空欄で未定）",
							Required:    false,
						},
					},
				},
			},
		},
	}
}

// BuildConfirmationView は GM/PL セレクトと確定・キャンセルボタンの確認ビュー
func BuildConfirmationView(draft model.Draft, maxMembers int) *discordgo.InteractionResponseData {
	minGM := 1
	minPL := 0

	return &discordgo.InteractionResponseData{
		Content:    confirmationSummary(draft),
		Flags:      discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.UserSelectMenu,
						CustomID:    fmt.Sprintf("%s:%s", selectGMPrefix, draft.OwnerID),
						Placeholder: "GM を選択（必須）",
						MinValues:   &minGM,
						MaxValues:   maxMembers,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.UserSelectMenu,
						CustomID:    fmt.Sprintf("%s:%s", selectPLPrefix, draft.OwnerID),
						Placeholder: "PL を選択（任意）",
						MinValues:   &minPL,
						MaxValues:   maxMembers,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "この内容で登録",
						Style:    discordgo.SuccessButton,
						CustomID: fmt.Sprintf("%s:%s", confirmPrefix, draft.OwnerID),
						Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
					},
					discordgo.Button{
						Label:    "キャンセル",
						Style:    discordgo.DangerButton,
						CustomID: fmt.Sprintf("%s:%s", cancelPrefix, draft.OwnerID),
						Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
					},
				},
			},
		},
	}
}

func confirmationSummary(draft model.Draft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**卓名:** %s\n", draft.TableName)
	fmt.Fprintf(&b, "**日程:** %s\n", displayDate(draft))
	b.WriteString("\nGM と PL を選んで「この内容で登録」を押してください")
	return b.String()
}

// BuildSuccessEmbed は登録完了のサマリ
func BuildSuccessEmbed(draft model.Draft, gmNames, plNames []string, pageURL string) *discordgo.MessageEmbed {
	plValue := "なし"
	if len(plNames) > 0 {
		plValue = strings.Join(plNames, ", ")
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎲 卓を登録しました",
		Color: 0x00FF00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "卓名", Value: draft.TableName, Inline: true},
			{Name: "日程", Value: displayDate(draft), Inline: true},
			{Name: "GM", Value: strings.Join(gmNames, ", "), Inline: false},
			{Name: "PL", Value: plValue, Inline: false},
		},
	}
	if pageURL != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Notion", Value: pageURL,
		})
	}
	return embed
}

// displayDate は日程の表示。解釈後の日付が入力と違うときは入力も添える
func displayDate(draft model.Draft) string {
	if !draft.HasDate() {
		return "未定"
	}
	original := strings.TrimSpace(draft.OriginalDateText)
	if original != "" && original != draft.SessionDate {
		return fmt.Sprintf("%s（入力: %s）", draft.SessionDate, original)
	}
	return draft.SessionDate
}
