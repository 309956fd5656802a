package notion

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
)

func filesProp(files ...notionapi.File) *notionapi.FilesProperty {
	return &notionapi.FilesProperty{Files: files}
}

func externalFile(url string) notionapi.File {
	return notionapi.File{
		Type:     notionapi.FileTypeExternal,
		External: &notionapi.FileObject{URL: url},
	}
}

func hostedFile(url string) notionapi.File {
	return notionapi.File{
		Type: notionapi.FileTypeFile,
		File: &notionapi.FileObject{URL: url},
	}
}

func TestExtractImageURLCandidateOrder(t *testing.T) {
	candidates := []string{"画像", "サムネイル"}

	props := notionapi.Properties{
		"サムネイル": filesProp(externalFile("https://example.com/second.png")),
		"画像":    filesProp(externalFile("https://example.com/first.png")),
	}
	assert.Equal(t, "https://example.com/first.png", ExtractImageURL(props, candidates))

	// 先頭候補が無ければ次へ
	delete(props, "画像")
	assert.Equal(t, "https://example.com/second.png", ExtractImageURL(props, candidates))
}

func TestExtractImageURLPrefersExternalImage(t *testing.T) {
	props := notionapi.Properties{
		"画像": filesProp(
			hostedFile("https://notion.so/files/hosted.bin"),
			externalFile("https://example.com/cover.jpg"),
		),
	}
	assert.Equal(t, "https://example.com/cover.jpg", ExtractImageURL(props, []string{"画像"}))
}

func TestExtractImageURLFallsBackToHostedFile(t *testing.T) {
	props := notionapi.Properties{
		"画像": filesProp(
			externalFile("https://example.com/page.html"), // 画像拡張子でない外部URLは使わない
			hostedFile("https://notion.so/files/hosted.bin"),
		),
	}
	assert.Equal(t, "https://notion.so/files/hosted.bin", ExtractImageURL(props, []string{"画像"}))
}

func TestExtractImageURLNotFound(t *testing.T) {
	props := notionapi.Properties{
		"名前": &notionapi.TitleProperty{},
	}
	assert.Empty(t, ExtractImageURL(props, []string{"画像", "サムネイル"}))
}

func TestHasImageExtension(t *testing.T) {
	assert.True(t, HasImageExtension("https://example.com/a.PNG"))
	assert.True(t, HasImageExtension("https://example.com/a.webp?itemid=1"))
	assert.False(t, HasImageExtension("https://example.com/a.pdf"))
	assert.False(t, HasImageExtension("https://example.com/page"))
}
