package forum

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SessionThreadSource は discordgo セッションを ThreadSource に適合させる
type SessionThreadSource struct {
	session *discordgo.Session
}

// NewSessionThreadSource wraps a live Discord session.
func NewSessionThreadSource(s *discordgo.Session) *SessionThreadSource {
	return &SessionThreadSource{session: s}
}

// ForumThreads は対象フォーラムのアーカイブされていないスレッドを返す
func (d *SessionThreadSource) ForumThreads(channelID string) ([]*discordgo.Channel, error) {
	ch, err := d.session.Channel(channelID)
	if err != nil {
		return nil, fmt.Errorf("チャンネル情報の取得に失敗: %w", err)
	}
	if ch.Type != discordgo.ChannelTypeGuildForum {
		return nil, fmt.Errorf("チャンネル %s はフォーラムではありません (type=%d)", channelID, ch.Type)
	}

	list, err := d.session.GuildThreadsActive(ch.GuildID)
	if err != nil {
		return nil, fmt.Errorf("アクティブスレッドの取得に失敗: %w", err)
	}

	var threads []*discordgo.Channel
	for _, t := range list.Threads {
		if t.ParentID != channelID {
			continue
		}
		if t.ThreadMetadata != nil && t.ThreadMetadata.Archived {
			continue
		}
		if t.GuildID == "" {
			t.GuildID = ch.GuildID
		}
		threads = append(threads, t)
	}
	return threads, nil
}

// StarterMessage はスレッドの最初の投稿を返す。
// フォーラムスレッドでは最初のメッセージ ID がスレッド ID と一致する
func (d *SessionThreadSource) StarterMessage(threadID string) (*discordgo.Message, error) {
	return d.session.ChannelMessage(threadID, threadID)
}

// NotifyThread はスレッドにメッセージを投稿する
func (d *SessionThreadSource) NotifyThread(threadID, content string) error {
	_, err := d.session.ChannelMessageSend(threadID, content)
	return err
}
