// Package store は対話の途中状態をプロセス内に保持する。
package store

import (
	"errors"
	"sync"
	"time"

	"takubot/model"
)

// ErrNoDraft は呼び出したユーザーの下書きが存在しないことを表す
var ErrNoDraft = errors.New("draft not found")

const draftTTL = 30 * time.Minute // 放置された下書きの寿命

// DraftStore はユーザーIDをキーにした下書き置き場。
// 同じユーザーが再度モーダルを送信すると前の下書きは上書きされる。
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*model.Draft
}

// NewDraftStore creates a draft store and starts its janitor.
func NewDraftStore() *DraftStore {
	s := &DraftStore{
		drafts: make(map[string]*model.Draft),
	}
	go s.startJanitor()
	return s
}

// Put は下書きを保存する。既存の下書きは問答無用で置き換える
func (s *DraftStore) Put(d *model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.CreatedAt = time.Now()
	s.drafts[d.OwnerID] = d
}

// Get は下書きのコピーを返す
func (s *DraftStore) Get(ownerID string) (model.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, found := s.drafts[ownerID]
	if !found {
		return model.Draft{}, false
	}
	return *d, true
}

// Mutate は本人の下書きだけを更新する。下書きが無い場合は ErrNoDraft
func (s *DraftStore) Mutate(ownerID string, fn func(*model.Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, found := s.drafts[ownerID]
	if !found || d.OwnerID != ownerID {
		return ErrNoDraft
	}
	fn(d)
	return nil
}

// Clear は下書きを削除する。存在しなくてもエラーにしない
func (s *DraftStore) Clear(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, ownerID)
}

// startJanitor は期限切れの下書きを定期的に回収する
func (s *DraftStore) startJanitor() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for id, d := range s.drafts {
			if time.Since(d.CreatedAt) > draftTTL {
				delete(s.drafts, id)
			}
		}
		s.mu.Unlock()
	}
}
