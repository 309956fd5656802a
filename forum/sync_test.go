package forum

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takubot/model"
)

type fakeThreads struct {
	threads  []*discordgo.Channel
	messages map[string]*discordgo.Message
	forumErr error
	msgErr   map[string]error
	notified map[string]string
}

func (f *fakeThreads) ForumThreads(channelID string) ([]*discordgo.Channel, error) {
	if f.forumErr != nil {
		return nil, f.forumErr
	}
	return f.threads, nil
}

func (f *fakeThreads) StarterMessage(threadID string) (*discordgo.Message, error) {
	if err := f.msgErr[threadID]; err != nil {
		return nil, err
	}
	msg, ok := f.messages[threadID]
	if !ok {
		return nil, errors.New("message not found")
	}
	return msg, nil
}

func (f *fakeThreads) NotifyThread(threadID, content string) error {
	if f.notified == nil {
		f.notified = make(map[string]string)
	}
	f.notified[threadID] = content
	return nil
}

type fakeRecorder struct {
	existing map[string]bool
	created  []model.ThreadRecord
	failFor  map[string]error
}

func (f *fakeRecorder) HasThreadPage(_ context.Context, threadURL string) (bool, error) {
	return f.existing[threadURL], nil
}

func (f *fakeRecorder) CreateThreadPage(_ context.Context, rec model.ThreadRecord) (string, error) {
	if err := f.failFor[rec.URL]; err != nil {
		return "", err
	}
	if f.existing == nil {
		f.existing = make(map[string]bool)
	}
	f.existing[rec.URL] = true
	f.created = append(f.created, rec)
	return "https://notion.so/" + rec.Title, nil
}

type fakeOGP struct {
	images map[string]string
}

func (f *fakeOGP) ImageURL(_ context.Context, pageURL string) (string, error) {
	img, ok := f.images[pageURL]
	if !ok {
		return "", errors.New("og:image not found")
	}
	return img, nil
}

func testConfig() model.Forum {
	return model.Forum{
		ChannelID:          "forum1",
		MarketplaceDomains: []string{"booth.pm", "talto.cc"},
		MaxThreads:         15,
	}
}

// スレッドIDは snowflake として解釈できる必要がある
func thread(id, name string) *discordgo.Channel {
	return &discordgo.Channel{ID: id, GuildID: "guild1", Name: name}
}

func TestSyncIdempotent(t *testing.T) {
	threads := &fakeThreads{
		threads: []*discordgo.Channel{
			thread("1000000000000000001", "卓A募集"),
			thread("1000000000000000002", "卓B募集"),
		},
		messages: map[string]*discordgo.Message{
			"1000000000000000001": {Content: "CoC卓やります"},
			"1000000000000000002": {Content: "SW卓やります"},
		},
	}
	rec := &fakeRecorder{}
	s := NewSyncer(threads, rec, &fakeOGP{}, testConfig())

	first := s.Sync(context.Background(), "forum1")
	assert.Equal(t, Result{Added: 2}, first)

	// フォーラムに変化がなければ2回目は全部スキップ
	second := s.Sync(context.Background(), "forum1")
	assert.Equal(t, Result{Skipped: 2}, second)
	assert.Len(t, rec.created, 2)
}

func TestSyncPrefersOGPImageOverAttachment(t *testing.T) {
	threads := &fakeThreads{
		threads: []*discordgo.Channel{thread("1000000000000000001", "沈黙の館 募集")},
		messages: map[string]*discordgo.Message{
			"1000000000000000001": {
				Content: "シナリオはこちら https://booth.pm/ja/items/12345 です",
				Attachments: []*discordgo.MessageAttachment{
					{URL: "https://cdn.discordapp.com/attachments/1/2/photo.png", ContentType: "image/png", Filename: "photo.png"},
				},
			},
		},
	}
	rec := &fakeRecorder{}
	ogp := &fakeOGP{images: map[string]string{
		"https://booth.pm/ja/items/12345": "https://booth.pximg.net/cover.jpg",
	}}
	s := NewSyncer(threads, rec, ogp, testConfig())

	result := s.Sync(context.Background(), "forum1")
	require.Equal(t, Result{Added: 1}, result)

	created := rec.created[0]
	assert.Equal(t, "https://booth.pximg.net/cover.jpg", created.ImageURL, "添付よりOGP画像を優先する")
	assert.Equal(t, "https://booth.pm/ja/items/12345", created.MarketplaceURL)
}

func TestSyncOGPFailureFallsBackToAttachment(t *testing.T) {
	threads := &fakeThreads{
		threads: []*discordgo.Channel{thread("1000000000000000001", "募集")},
		messages: map[string]*discordgo.Message{
			"1000000000000000001": {
				Content: "https://talto.cc/projects/abc",
				Attachments: []*discordgo.MessageAttachment{
					{URL: "https://cdn.discordapp.com/attachments/1/2/cover.png", ContentType: "image/png"},
				},
			},
		},
	}
	rec := &fakeRecorder{}
	s := NewSyncer(threads, rec, &fakeOGP{}, testConfig())

	result := s.Sync(context.Background(), "forum1")
	require.Equal(t, Result{Added: 1}, result)
	assert.Equal(t, "https://cdn.discordapp.com/attachments/1/2/cover.png", rec.created[0].ImageURL)
	assert.Equal(t, "https://talto.cc/projects/abc", rec.created[0].MarketplaceURL)
}

func TestSyncIgnoresUnlistedDomains(t *testing.T) {
	threads := &fakeThreads{
		threads: []*discordgo.Channel{thread("1000000000000000001", "募集")},
		messages: map[string]*discordgo.Message{
			"1000000000000000001": {Content: "https://example.com/scenario"},
		},
	}
	rec := &fakeRecorder{}
	s := NewSyncer(threads, rec, &fakeOGP{}, testConfig())

	s.Sync(context.Background(), "forum1")
	require.Len(t, rec.created, 1)
	assert.Empty(t, rec.created[0].MarketplaceURL)
}

func TestSyncNonForumReturnsZero(t *testing.T) {
	threads := &fakeThreads{forumErr: errors.New("チャンネルはフォーラムではありません")}
	s := NewSyncer(threads, &fakeRecorder{}, &fakeOGP{}, testConfig())

	result := s.Sync(context.Background(), "text1")
	assert.Equal(t, Result{}, result)
}

func TestSyncIsolatesPerThreadFailures(t *testing.T) {
	threads := &fakeThreads{
		threads: []*discordgo.Channel{
			thread("1000000000000000001", "壊れた募集"),
			thread("1000000000000000002", "正常な募集"),
		},
		messages: map[string]*discordgo.Message{
			"1000000000000000002": {Content: "こちらは取り込める"},
		},
		msgErr: map[string]error{
			"1000000000000000001": errors.New("message fetch failed"),
		},
	}
	rec := &fakeRecorder{}
	s := NewSyncer(threads, rec, &fakeOGP{}, testConfig())

	result := s.Sync(context.Background(), "forum1")
	assert.Equal(t, Result{Added: 1, Failed: 1}, result)

	// 成功したスレッドにだけ通知が飛ぶ
	assert.Contains(t, threads.notified, "1000000000000000002")
	assert.NotContains(t, threads.notified, "1000000000000000001")
}

func TestSyncCapsThreadCount(t *testing.T) {
	cfg := testConfig()
	cfg.MaxThreads = 2

	var list []*discordgo.Channel
	messages := make(map[string]*discordgo.Message)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("100000000000000000%d", i)
		list = append(list, thread(id, "募集"))
		messages[id] = &discordgo.Message{Content: "本文"}
	}

	threads := &fakeThreads{threads: list, messages: messages}
	rec := &fakeRecorder{}
	s := NewSyncer(threads, rec, &fakeOGP{}, cfg)

	result := s.Sync(context.Background(), "forum1")
	assert.Equal(t, Result{Added: 2}, result)
}
