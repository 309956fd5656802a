package notion

import (
	"net/url"
	"path"
	"strings"

	"github.com/jomei/notionapi"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// ExtractImageURL は候補プロパティ名を先頭から順に見て代表画像の URL を返す。
// 各プロパティ内では画像拡張子を持つ外部 URL を優先し、
// 無ければ Notion にアップロードされたファイルの URL を使う。
// 見つからなければ空文字。
func ExtractImageURL(props notionapi.Properties, candidates []string) string {
	for _, name := range candidates {
		prop, ok := props[name]
		if !ok {
			continue
		}
		files, ok := prop.(*notionapi.FilesProperty)
		if !ok {
			continue
		}

		for _, f := range files.Files {
			if f.External != nil && HasImageExtension(f.External.URL) {
				return f.External.URL
			}
		}
		for _, f := range files.Files {
			if f.File != nil && f.File.URL != "" {
				return f.File.URL
			}
		}
	}
	return ""
}

// HasImageExtension は URL のパスが画像拡張子で終わるかどうか
func HasImageExtension(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
