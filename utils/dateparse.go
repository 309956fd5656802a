package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthDayRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
)

// DateResult は日付欄の解釈結果。
// 認識できた ISO 日付・未入力・解釈できなかった生テキストのいずれかを表す。
type DateResult struct {
	value      string
	recognized bool
	unset      bool
}

// NoDate は「日程未定」を表す結果
func NoDate() DateResult {
	return DateResult{unset: true}
}

// ParsedDate は認識済みの YYYY-MM-DD を包む
func ParsedDate(iso string) DateResult {
	return DateResult{value: iso, recognized: true}
}

// UnparsedDate は解釈できなかった入力をそのまま包む
func UnparsedDate(raw string) DateResult {
	return DateResult{value: raw}
}

// Unset は日程未定かどうか
func (r DateResult) Unset() bool {
	return r.unset
}

// ISO は認識できた場合に YYYY-MM-DD を返す
func (r DateResult) ISO() (string, bool) {
	return r.value, r.recognized
}

// Raw は解釈できなかった入力を返す
func (r DateResult) Raw() string {
	return r.value
}

// IsValidISODate は YYYY-MM-DD 形式かどうかを確認する。
// 解釈できなかった入力をユーザーに差し戻すときの最終チェックに使う。
func IsValidISODate(s string) bool {
	return isoDateRe.MatchString(s)
}

// ParseDate は自由入力の日付テキストを正規化する。
//   - 空欄 → 日程未定
//   - YYYY-MM-DD → そのまま
//   - M/D, MM/DD → 今年の日付に補完
//   - 今日/明日/today/tomorrow → 相対日付
//   - 「来週」を含む → 7日後（曜日指定は無視する仕様）
//   - それ以外 → 入力をそのまま返す（呼び出し側で形式エラーにする）
func ParseDate(text string, now time.Time) DateResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NoDate()
	}

	if isoDateRe.MatchString(trimmed) {
		return ParsedDate(trimmed)
	}

	if m := monthDayRe.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return ParsedDate(fmt.Sprintf("%04d-%02d-%02d", now.Year(), month, day))
	}

	switch {
	case strings.EqualFold(trimmed, "today") || trimmed == "今日":
		return ParsedDate(formatISODate(now))
	case strings.EqualFold(trimmed, "tomorrow") || trimmed == "明日":
		return ParsedDate(formatISODate(now.AddDate(0, 0, 1)))
	case strings.Contains(trimmed, "来週"):
		// 「来週土曜」なども一律で +7 日。曜日合わせはしない
		return ParsedDate(formatISODate(now.AddDate(0, 0, 7)))
	}

	return UnparsedDate(text)
}

func formatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
