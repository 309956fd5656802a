package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takubot/model"
)

func TestMutateRejectsUnknownUser(t *testing.T) {
	s := NewDraftStore()
	s.Put(&model.Draft{OwnerID: "alice", TableName: "第1回クトゥルフ卓"})

	err := s.Mutate("bob", func(d *model.Draft) {
		d.GMIDs = []string{"bob"}
	})
	require.ErrorIs(t, err, ErrNoDraft)

	// alice の下書きは変わっていない
	d, found := s.Get("alice")
	require.True(t, found)
	assert.Empty(t, d.GMIDs)
}

func TestMutateUpdatesOwnDraft(t *testing.T) {
	s := NewDraftStore()
	s.Put(&model.Draft{OwnerID: "alice"})

	err := s.Mutate("alice", func(d *model.Draft) {
		d.GMIDs = []string{"100", "200"}
	})
	require.NoError(t, err)

	d, found := s.Get("alice")
	require.True(t, found)
	assert.Equal(t, []string{"100", "200"}, d.GMIDs)
}

func TestPutOverwritesPreviousDraft(t *testing.T) {
	s := NewDraftStore()
	s.Put(&model.Draft{OwnerID: "alice", TableName: "旧卓"})
	s.Put(&model.Draft{OwnerID: "alice", TableName: "新卓"})

	d, found := s.Get("alice")
	require.True(t, found)
	assert.Equal(t, "新卓", d.TableName)
}

func TestClearThenMutateFails(t *testing.T) {
	s := NewDraftStore()
	s.Put(&model.Draft{OwnerID: "alice"})
	s.Clear("alice")

	_, found := s.Get("alice")
	assert.False(t, found)
	assert.ErrorIs(t, s.Mutate("alice", func(*model.Draft) {}), ErrNoDraft)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewDraftStore()
	s.Put(&model.Draft{OwnerID: "alice", TableName: "卓"})

	d, _ := s.Get("alice")
	d.TableName = "書き換え"

	again, _ := s.Get("alice")
	assert.Equal(t, "卓", again.TableName)
}
