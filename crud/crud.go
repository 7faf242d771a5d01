package crud

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/DanteA11/TweetsApi/filestore"
	"github.com/DanteA11/TweetsApi/model"
)

// errNoMediaClaimed aborts the tweet transaction when none of the candidate
// media ids could be claimed; it never leaves this package.
var errNoMediaClaimed = errors.New("no media rows claimed")

/*

Controller is the data-access layer. One instance serves the whole process;
every operation runs against the injected gorm handle, mutations inside a
per-call transaction. Domain-expected failures (duplicate edge, not-found,
self-follow, unclaimable media) are reported as booleans, only
infrastructure failures come back as errors.

*/

type Controller struct {
	db    *gorm.DB
	store filestore.FileStore
}

func NewController(db *gorm.DB, store filestore.FileStore) *Controller {
	return &Controller{db: db, store: store}
}

// DB exposes the underlying handle for callers composing their own queries.
func (c *Controller) DB() *gorm.DB {
	return c.db
}

// GetUserByApiKey finds the user whose ApiKey.Key matches exactly. Returns
// nil without error when no user matches.
func (c *Controller) GetUserByApiKey(ctx context.Context, apiKey string) (*model.User, error) {
	var user model.User
	err := c.db.WithContext(ctx).
		Joins("JOIN api_keys ON api_keys.id = users.key_id").
		Where("api_keys.key = ?", apiKey).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("api_key", apiKey).Debug("no user for api key")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID loads a single record of any entity with an integer primary key.
// Returns nil without error when the id is absent.
func GetByID[T any](ctx context.Context, db *gorm.DB, id int) (*T, error) {
	var record T
	err := db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// AddSubscribe persists a follow edge. Self-follow is rejected before
// touching storage; a duplicate edge or a nonexistent author fails the
// insert's constraints and reports false.
func (c *Controller) AddSubscribe(ctx context.Context, followerId, authorId int) (bool, error) {
	if followerId == authorId {
		logrus.WithField("user_id", followerId).Info("refusing self-follow")
		return false, nil
	}
	subscribe := &model.Subscribe{FollowerId: followerId, AuthorId: authorId}
	if err := c.db.WithContext(ctx).Create(subscribe).Error; err != nil {
		if isConstraintViolation(err) {
			logrus.WithFields(logrus.Fields{
				"follower_id": followerId,
				"author_id":   authorId,
			}).Info("subscribe rejected by constraint")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DropSubscribe deletes a follow edge, reporting whether one existed.
func (c *Controller) DropSubscribe(ctx context.Context, followerId, authorId int) (bool, error) {
	if followerId == authorId {
		logrus.WithField("user_id", followerId).Info("refusing self-unfollow")
		return false, nil
	}
	res := c.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerId, authorId).
		Delete(&model.Subscribe{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateLike persists a like. A duplicate (user, tweet) pair and a
// nonexistent tweet both fail the insert's constraints and report false.
func (c *Controller) CreateLike(ctx context.Context, userId, tweetId int) (bool, error) {
	like := &model.Like{UserId: userId, TweetId: tweetId}
	if err := c.db.WithContext(ctx).Create(like).Error; err != nil {
		if isConstraintViolation(err) {
			logrus.WithFields(logrus.Fields{
				"user_id":  userId,
				"tweet_id": tweetId,
			}).Info("like rejected by constraint")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveLike deletes a like, reporting whether one existed.
func (c *Controller) RemoveLike(ctx context.Context, userId, tweetId int) (bool, error) {
	res := c.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userId, tweetId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddMedia inserts an unattached media row and stores the file content
// under the generated "{id}.{ext}" name. The write happens inside the row's
// transaction: a failed write rolls the row back, so no committed row ever
// points at a missing file.
func (c *Controller) AddMedia(ctx context.Context, userId int, fileType string, content []byte) (int, error) {
	var mediaId int
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		media := &model.Media{UserId: userId, FileType: fileType}
		if err := tx.Create(media).Error; err != nil {
			return err
		}
		if err := c.store.Save(media.FileName(), content); err != nil {
			return err
		}
		mediaId = media.Id
		return nil
	})
	if err != nil {
		return 0, err
	}
	logrus.WithField("media_id", mediaId).Info("media stored")
	return mediaId, nil
}

// AddTweet inserts a tweet and claims the candidate media ids for it. A
// media row is claimed only if it is owned by the author, listed in
// mediaIds and still unattached. With candidates given and none claimed the
// whole insert rolls back and ok is false; with no candidates the tweet
// stands alone.
func (c *Controller) AddTweet(ctx context.Context, userId int, content string, mediaIds []int) (tweetId int, ok bool, err error) {
	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tweet := &model.Tweet{Content: content, AuthorId: userId}
		// Create flushes the row so the generated id is available to the
		// media update below, still inside the open transaction.
		if err := tx.Create(tweet).Error; err != nil {
			return err
		}
		tweetId = tweet.Id
		if len(mediaIds) == 0 {
			return nil
		}
		res := tx.Model(&model.Media{}).
			Where("user_id = ? AND id IN ? AND tweet_id IS NULL", userId, mediaIds).
			Update("tweet_id", tweet.Id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoMediaClaimed
		}
		return nil
	})
	if errors.Is(err, errNoMediaClaimed) {
		logrus.WithFields(logrus.Fields{
			"user_id":   userId,
			"media_ids": mediaIds,
		}).Info("tweet rolled back, no media claimed")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	logrus.WithField("tweet_id", tweetId).Info("tweet stored")
	return tweetId, true, nil
}

// RemoveTweet deletes a tweet if tweetId and userId match an existing
// tweet and its author. The attached media rows go with the row via the
// cascade and their files are removed afterwards; when the delete affects
// nothing, no file is touched.
func (c *Controller) RemoveTweet(ctx context.Context, userId, tweetId int) (bool, error) {
	var medias []*model.Media
	removed := false
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Snapshot the attachments before the cascade drops their rows.
		if err := tx.Where("tweet_id = ?", tweetId).Find(&medias).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND author_id = ?", tweetId, userId).Delete(&model.Tweet{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	if err != nil || !removed {
		return false, err
	}
	g, _ := errgroup.WithContext(ctx)
	for _, media := range medias {
		media := media
		g.Go(func() error {
			return c.store.Remove(media.FileName())
		})
	}
	if err := g.Wait(); err != nil {
		// The tweet is gone either way; leftover files are swept by the
		// janitor's orphan pass.
		logrus.WithError(err).Warn("failed to remove attached media files")
	}
	logrus.WithField("tweet_id", tweetId).Info("tweet removed")
	return true, nil
}

// isConstraintViolation matches the storage-layer failures that the access
// layer converts to a boolean result: duplicate key and broken foreign key.
func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}
