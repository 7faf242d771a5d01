package janitor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DanteA11/TweetsApi/filestore"
	"github.com/DanteA11/TweetsApi/model"
	"github.com/DanteA11/TweetsApi/utils"
)

func seedMedia(t *testing.T, db *gorm.DB, store *filestore.Local, userId int, tweetId *int, age time.Duration) *model.Media {
	t.Helper()
	media := &model.Media{
		FileType:  "jpg",
		UserId:    userId,
		TweetId:   tweetId,
		CreatedAt: time.Now().Add(-age),
	}
	require.Nil(t, db.Create(media).Error)
	require.Nil(t, store.Save(media.FileName(), []byte("x")))
	return media
}

func TestPurgeOrphans(t *testing.T) {
	db := utils.CreateTempDB(t)
	store, err := filestore.NewLocal(t.TempDir())
	require.Nil(t, err)

	apiKey := &model.ApiKey{Key: "key"}
	require.Nil(t, db.Create(apiKey).Error)
	user := &model.User{Name: "alice", KeyId: &apiKey.Id}
	require.Nil(t, db.Create(user).Error)
	tweet := &model.Tweet{Content: "hello", AuthorId: user.Id}
	require.Nil(t, db.Create(tweet).Error)

	oldOrphan := seedMedia(t, db, store, user.Id, nil, 48*time.Hour)
	freshOrphan := seedMedia(t, db, store, user.Id, nil, time.Minute)
	attached := seedMedia(t, db, store, user.Id, &tweet.Id, 48*time.Hour)

	j := New(db, store, 24*time.Hour)
	purged, err := j.PurgeOrphans(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 1, purged)

	var count int64
	db.Model(&model.Media{}).Count(&count)
	assert.Equal(t, int64(2), count)

	_, err = os.Stat(filepath.Join(store.Dir(), oldOrphan.FileName()))
	assert.True(t, os.IsNotExist(err))
	for _, keep := range []*model.Media{freshOrphan, attached} {
		_, err = os.Stat(filepath.Join(store.Dir(), keep.FileName()))
		assert.Nil(t, err)
	}
}

func TestPurgeOrphans_NothingToDo(t *testing.T) {
	db := utils.CreateTempDB(t)
	store, err := filestore.NewLocal(t.TempDir())
	require.Nil(t, err)

	j := New(db, store, 24*time.Hour)
	purged, err := j.PurgeOrphans(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 0, purged)
}
