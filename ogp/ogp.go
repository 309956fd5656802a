// Package ogp はシナリオ販売ページから Open Graph の画像を取り出す。
package ogp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "takubot/1.0 (+https://discord.com)"

// Fetcher fetches Open Graph metadata from a page.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with a bounded timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFetcherWithClient は HTTP クライアントを差し替える（テスト用）
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// ImageURL はページの og:image を返す。無ければエラー
func (f *Fetcher) ImageURL(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("リクエスト作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ページ取得に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ページ取得に失敗: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("HTML の解析に失敗: %w", err)
	}

	image, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if !ok || image == "" {
		return "", fmt.Errorf("og:image が見つかりません: %s", pageURL)
	}
	return image, nil
}
