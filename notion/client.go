// Package notion は卓一覧・募集スレッドの2つのデータベースへの書き込みを受け持つ。
package notion

import (
	"github.com/jomei/notionapi"

	"takubot/model"
)

// ステータスプロパティの値。未着手のスレッドが卓登録で関連付くと「卓予定」へ進む
const (
	StatusUntouched = "未着手"
	StatusPlanned   = "卓予定"
)

// 卓一覧データベースのプロパティ名
const (
	propTableName = "卓名"
	propDate      = "日程"
	propGM        = "GM"
	propPL        = "PL"
	propChannel   = "チャンネル"
	propThread    = "スレッド"
	propRelation  = "関連スレッド"
)

// 募集スレッドデータベースのプロパティ名
const (
	propThreadTitle = "名前"
	propThreadURL   = "URL"
	propCreatedAt   = "作成日"
	propItemURL     = "アイテムURL"
	propStatus      = "ステータス"
)

// Service は Notion API クライアントと対象データベースの設定を束ねる
type Service struct {
	client *notionapi.Client
	cfg    model.Notion
}

// NewService creates a Notion service from the notion section of the config.
func NewService(cfg model.Notion) *Service {
	return &Service{
		client: notionapi.NewClient(notionapi.Token(cfg.APIKey)),
		cfg:    cfg,
	}
}

// HasThreadDatabase は募集スレッドデータベースが設定されているかどうか
func (s *Service) HasThreadDatabase() bool {
	return s.cfg.ThreadDatabaseID != ""
}
