// Package workflow は卓登録フローの状態遷移を持つ。
// Discord への応答は Effect として返すだけで、ここでは一切 I/O しない。
package workflow

import "takubot/model"

// Role はセレクトメニューの種別
type Role int

const (
	RoleGM Role = iota
	RolePL
)

// Event は卓登録フローへの入力
type Event interface {
	isEvent()
}

// ModalSubmitted は登録フォームの送信
type ModalSubmitted struct {
	UserID    string
	TableName string
	DateText  string
}

// SelectionChanged は GM/PL セレクトの変更
type SelectionChanged struct {
	UserID    string
	Role      Role
	MemberIDs []string
}

// ConfirmClicked は確定ボタン
type ConfirmClicked struct {
	UserID string
}

// CancelClicked はキャンセルボタン
type CancelClicked struct {
	UserID string
}

func (ModalSubmitted) isEvent()   {}
func (SelectionChanged) isEvent() {}
func (ConfirmClicked) isEvent()   {}
func (CancelClicked) isEvent()    {}

// Effect は遷移の結果として実行すべき応答
type Effect interface {
	isEffect()
}

// ShowConfirmation は確認ビュー（GM/PL セレクト + ボタン）の表示
type ShowConfirmation struct {
	Draft model.Draft
}

// RejectInput は入力エラーの通知。下書きの状態は進めない
type RejectInput struct {
	Message string
}

// RejectSession はセッション切れの通知。やり直しを促す
type RejectSession struct {
	Message string
}

// AckSelection はセレクト変更の無言応答
type AckSelection struct{}

// CommitDraft は確定した下書きの外部書き込み依頼
type CommitDraft struct {
	Draft model.Draft
}

// AckCancelled はキャンセル完了の通知
type AckCancelled struct{}

func (ShowConfirmation) isEffect() {}
func (RejectInput) isEffect()      {}
func (RejectSession) isEffect()    {}
func (AckSelection) isEffect()     {}
func (CommitDraft) isEffect()      {}
func (AckCancelled) isEffect()     {}
