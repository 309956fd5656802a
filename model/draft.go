package model

import "time"

// Draft は確定前の卓登録。モーダル送信で作られ、セレクト操作で更新され、
// 確定またはキャンセルで破棄される。
type Draft struct {
	OwnerID   string
	TableName string
	// SessionDate は YYYY-MM-DD。日程未定のときは空
	SessionDate string
	// OriginalDateText はユーザーが入力した生テキスト（表示用）
	OriginalDateText string
	GMIDs            []string
	PLIDs            []string
	CreatedAt        time.Time
}

// HasDate は日程が決まっているかどうか
func (d *Draft) HasDate() bool {
	return d.SessionDate != ""
}
