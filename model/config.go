package model

// Config は config.yaml のトップレベル構造
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
	Notion   Notion   `mapstructure:"notion"`
	Forum    Forum    `mapstructure:"forum"`
	Web      Web      `mapstructure:"web"`
	Table    Table    `mapstructure:"table"`
}

// Commands は "commands" 部分
type Commands struct {
	Allowguilds []string `mapstructure:"allowguilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth は "auth" 部分
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}

// Notion は Notion API 接続と2つのデータベースの設定
type Notion struct {
	APIKey string `mapstructure:"api_key"`
	// 卓一覧データベース（登録フローの書き込み先）
	SessionDatabaseID string `mapstructure:"session_database_id"`
	// 募集スレッドデータベース（フォーラム同期の書き込み先）
	ThreadDatabaseID string `mapstructure:"thread_database_id"`
	// 画像を探すファイルプロパティ名（先頭から順に試す）
	ImageProperties []string `mapstructure:"image_properties"`
}

// Forum はフォーラム同期ジョブの設定
type Forum struct {
	ChannelID string `mapstructure:"channel_id"`
	// cron 形式。既定は毎日 09:00 JST
	Schedule string `mapstructure:"schedule"`
	Timezone string `mapstructure:"timezone"`
	// シナリオ販売サイトのドメイン許可リスト
	MarketplaceDomains []string `mapstructure:"marketplace_domains"`
	// 1回の同期で見るスレッド数の上限
	MaxThreads int `mapstructure:"max_threads"`
}

// Web は keep-alive 用 HTTP サーバの設定
type Web struct {
	Port string `mapstructure:"port"`
	// /sync を外部スケジューラから叩くための共有シークレット
	SyncSecret string `mapstructure:"sync_secret"`
}

// Table は卓登録フローの設定
type Table struct {
	// GM/PL セレクトの最大選択数
	MaxMembers int `mapstructure:"max_members"`
}
