package model

import "time"

// ThreadRecord は募集スレッド1件分の Notion ページの材料。
// 正規 URL がデータベース上の重複排除キーになる。
type ThreadRecord struct {
	Title     string
	URL       string
	CreatedAt time.Time
	// MarketplaceURL は本文から拾ったシナリオ販売ページの URL（任意）
	MarketplaceURL string
	// ImageURL は代表画像。OGP 画像を優先し、無ければ添付画像
	ImageURL string
	// FileURL / FileName は画像以外の添付（任意）
	FileURL  string
	FileName string
	// Body はスレッドの最初の投稿の本文
	Body string
}

// ChannelContext はインタラクションが発生したチャンネル/スレッドの情報
type ChannelContext struct {
	GuildID     string
	ChannelID   string
	ChannelName string
	// スレッド内から呼ばれた場合のみ設定される
	ThreadID   string
	ThreadName string
}

// InThread はスレッド内のインタラクションかどうか
func (c *ChannelContext) InThread() bool {
	return c.ThreadID != ""
}

// CanonicalThreadURL はスレッドの正規 URL。重複排除と関連付けの両方で使う
func CanonicalThreadURL(guildID, threadID string) string {
	return "https://discord.com/channels/" + guildID + "/" + threadID
}
