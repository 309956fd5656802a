package workflow

import (
	"fmt"
	"time"

	"takubot/model"
	"takubot/store"
	"takubot/utils"
)

const maxTableNameLen = 100

// Machine は下書きストアを介して卓登録フローを進める
type Machine struct {
	store *store.DraftStore
	now   func() time.Time
}

// NewMachine creates a workflow machine backed by the given draft store.
func NewMachine(s *store.DraftStore) *Machine {
	return &Machine{store: s, now: time.Now}
}

// Handle はイベントを1つ処理して応答すべき Effect を返す
func (m *Machine) Handle(ev Event) Effect {
	switch e := ev.(type) {
	case ModalSubmitted:
		return m.handleModal(e)
	case SelectionChanged:
		return m.handleSelection(e)
	case ConfirmClicked:
		return m.handleConfirm(e)
	case CancelClicked:
		return m.handleCancel(e)
	}
	return RejectInput{Message: "不明な操作です"}
}

func (m *Machine) handleModal(e ModalSubmitted) Effect {
	if e.TableName == "" {
		return RejectInput{Message: "卓名を入力してください"}
	}
	if len([]rune(e.TableName)) > maxTableNameLen {
		return RejectInput{Message: fmt.Sprintf("卓名は%d文字以内で入力してください", maxTableNameLen)}
	}

	result := utils.ParseDate(e.DateText, m.now())

	draft := &model.Draft{
		OwnerID:          e.UserID,
		TableName:        e.TableName,
		OriginalDateText: e.DateText,
	}
	if !result.Unset() {
		iso, ok := result.ISO()
		if !ok || !utils.IsValidISODate(iso) {
			// 下書きは作らずその場で差し戻す
			return RejectInput{
				Message: fmt.Sprintf("日程「%s」を解釈できませんでした。YYYY-MM-DD か M/D、または「今日」「明日」「来週」で入力してください", result.Raw()),
			}
		}
		draft.SessionDate = iso
	}

	// 同じユーザーの未完了の下書きは黙って上書きする
	m.store.Put(draft)
	return ShowConfirmation{Draft: *draft}
}

func (m *Machine) handleSelection(e SelectionChanged) Effect {
	err := m.store.Mutate(e.UserID, func(d *model.Draft) {
		switch e.Role {
		case RoleGM:
			d.GMIDs = e.MemberIDs
		case RolePL:
			d.PLIDs = e.MemberIDs
		}
	})
	if err != nil {
		return RejectSession{Message: "セッションが見つかりません。もう一度 /taku からやり直してください"}
	}
	return AckSelection{}
}

func (m *Machine) handleConfirm(e ConfirmClicked) Effect {
	draft, found := m.store.Get(e.UserID)
	if !found {
		return RejectSession{Message: "セッションが見つかりません。もう一度 /taku からやり直してください"}
	}
	if len(draft.GMIDs) == 0 {
		return RejectInput{Message: "GMを1人以上選択してください"}
	}

	// 確定に入った時点で下書きは破棄する。書き込みに失敗しても再試行はしない
	m.store.Clear(e.UserID)
	return CommitDraft{Draft: draft}
}

func (m *Machine) handleCancel(e CancelClicked) Effect {
	m.store.Clear(e.UserID)
	return AckCancelled{}
}
