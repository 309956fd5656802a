package notion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// MissingConfig は設定不足の項目名を返す。書き込み前に呼び出し側で確認する
func (s *Service) MissingConfig() []string {
	var missing []string
	if s.cfg.APIKey == "" {
		missing = append(missing, "notion.api_key")
	}
	if s.cfg.SessionDatabaseID == "" {
		missing = append(missing, "notion.session_database_id")
	}
	return missing
}

// UserMessage は Notion API のエラーをユーザー向けの1行に変換する
func UserMessage(err error) string {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case "unauthorized":
			return "Notion トークンが無効です。notion.api_key を確認してください"
		case "object_not_found":
			return "Notion データベースが見つかりません。インテグレーションにデータベースを共有しているか確認してください"
		case "validation_error":
			return fmt.Sprintf("Notion プロパティの形式が合っていません: %s", apiErr.Message)
		}
	}
	return "Notion への書き込みに失敗しました"
}

// MissingConfigMessage は不足項目をまとめた1行を返す
func MissingConfigMessage(missing []string) string {
	return fmt.Sprintf("設定が不足しています: %s", strings.Join(missing, ", "))
}
