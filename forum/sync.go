// Package forum はフォーラムチャンネルの募集スレッドを Notion に取り込む。
package forum

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"takubot/model"
)

var urlRe = regexp.MustCompile(`https?://[^\s<>]+`)

// Result は1回の同期の件数
type Result struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// ThreadSource はフォーラム側の読み取りと通知
type ThreadSource interface {
	// ForumThreads は対象チャンネルのアクティブなスレッドを新しい順で返す。
	// フォーラムチャンネルでない場合はエラー
	ForumThreads(channelID string) ([]*discordgo.Channel, error)
	// StarterMessage はスレッドの最初の投稿を返す
	StarterMessage(threadID string) (*discordgo.Message, error)
	// NotifyThread はスレッドにメッセージを投稿する
	NotifyThread(threadID, content string) error
}

// Recorder は Notion 側の存在確認とページ作成
type Recorder interface {
	HasThreadPage(ctx context.Context, threadURL string) (bool, error)
	CreateThreadPage(ctx context.Context, rec model.ThreadRecord) (string, error)
}

// ImageFetcher は販売ページの OGP 画像取得
type ImageFetcher interface {
	ImageURL(ctx context.Context, pageURL string) (string, error)
}

// Syncer は同期ジョブ本体。URL をキーに重複排除するので再実行しても安全
type Syncer struct {
	threads  ThreadSource
	recorder Recorder
	ogp      ImageFetcher
	cfg      model.Forum
}

// NewSyncer creates a sync job over the given edges.
func NewSyncer(threads ThreadSource, recorder Recorder, ogp ImageFetcher, cfg model.Forum) *Syncer {
	return &Syncer{threads: threads, recorder: recorder, ogp: ogp, cfg: cfg}
}

// Sync はチャンネルの最近のスレッドを1件ずつ取り込む。
// 1件の失敗は件数に数えるだけで残りの処理は続ける。
func (s *Syncer) Sync(ctx context.Context, channelID string) Result {
	runID := uuid.New().String()[:8]
	log := zap.S().With("run", runID, "channel", channelID)

	var result Result

	threads, err := s.threads.ForumThreads(channelID)
	if err != nil {
		// 設定ミス（フォーラムでない等）は呼び出し元に投げずゼロ件で返す
		log.Errorw("フォーラムスレッドの取得に失敗", "error", err)
		return result
	}

	if max := s.cfg.MaxThreads; max > 0 && len(threads) > max {
		threads = threads[:max]
	}

	for _, thread := range threads {
		threadURL := model.CanonicalThreadURL(thread.GuildID, thread.ID)

		exists, err := s.recorder.HasThreadPage(ctx, threadURL)
		if err != nil {
			log.Warnw("既存ページの確認に失敗", "thread", thread.ID, "error", err)
			result.Failed++
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		pageURL, err := s.syncThread(ctx, thread, threadURL)
		if err != nil {
			log.Warnw("スレッドの取り込みに失敗", "thread", thread.ID, "error", err)
			result.Failed++
			continue
		}
		result.Added++

		if err := s.threads.NotifyThread(thread.ID, "Notion に追加しました: "+pageURL); err != nil {
			log.Warnw("スレッドへの通知に失敗", "thread", thread.ID, "error", err)
		}
	}

	log.Infow("フォーラム同期完了", "added", result.Added, "skipped", result.Skipped, "failed", result.Failed)
	return result
}

func (s *Syncer) syncThread(ctx context.Context, thread *discordgo.Channel, threadURL string) (string, error) {
	msg, err := s.threads.StarterMessage(thread.ID)
	if err != nil {
		return "", fmt.Errorf("最初の投稿の取得に失敗: %w", err)
	}

	createdAt, err := discordgo.SnowflakeTimestamp(thread.ID)
	if err != nil {
		return "", fmt.Errorf("スレッドIDの解釈に失敗: %w", err)
	}

	rec := model.ThreadRecord{
		Title:     thread.Name,
		URL:       threadURL,
		CreatedAt: createdAt,
		Body:      msg.Content,
	}

	// 添付は画像と画像以外をそれぞれ最初の1件だけ拾う
	for _, a := range msg.Attachments {
		if strings.HasPrefix(a.ContentType, "image/") {
			if rec.ImageURL == "" {
				rec.ImageURL = a.URL
			}
		} else if rec.FileURL == "" {
			rec.FileURL = a.URL
			rec.FileName = a.Filename
		}
	}

	// 本文に販売ページの URL があれば OGP 画像を優先する。失敗は添付画像で代替
	if market := s.findMarketplaceURL(msg.Content); market != "" {
		rec.MarketplaceURL = market
		if img, err := s.ogp.ImageURL(ctx, market); err == nil && img != "" {
			rec.ImageURL = img
		} else if err != nil {
			zap.S().Debugw("OGP 画像の取得に失敗", "url", market, "error", err)
		}
	}

	return s.recorder.CreateThreadPage(ctx, rec)
}

// findMarketplaceURL は本文中で最初に現れる許可ドメインの URL を返す
func (s *Syncer) findMarketplaceURL(content string) string {
	for _, raw := range urlRe.FindAllString(content, -1) {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		host := strings.ToLower(u.Hostname())
		for _, domain := range s.cfg.MarketplaceDomains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return raw
			}
		}
	}
	return ""
}
