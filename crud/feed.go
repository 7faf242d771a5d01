package crud

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DanteA11/TweetsApi/model"
)

// GetTweetsInfo returns the viewer's feed: every tweet whose author the
// viewer follows plus the viewer's own tweets, ordered by descending like
// count. Each tweet is hydrated with attachment URLs built from mediaBase,
// its author and its likes with the liking users' names.
//
// Hydration is one eagerly-batched query per relation rather than per-row
// attribute loading; the three batches run concurrently and are merged by
// tweet id before assembly.
func (c *Controller) GetTweetsInfo(ctx context.Context, userId int, mediaBase string) ([]*model.TweetInfo, error) {
	followed := c.db.Model(&model.Subscribe{}).
		Select("author_id").
		Where("follower_id = ?", userId)

	var tweets []*model.Tweet
	err := c.db.WithContext(ctx).Model(&model.Tweet{}).
		Joins("LEFT JOIN likes ON likes.tweet_id = tweets.id").
		Where("tweets.author_id IN (?) OR tweets.author_id = ?", followed, userId).
		Group("tweets.id").
		Order("COUNT(likes.tweet_id) DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return []*model.TweetInfo{}, nil
	}

	tweetIds := make([]int, 0, len(tweets))
	authorIds := make([]int, 0, len(tweets))
	for _, tweet := range tweets {
		tweetIds = append(tweetIds, tweet.Id)
		authorIds = append(authorIds, tweet.AuthorId)
	}

	var (
		medias  []*model.Media
		authors []*model.User
		likes   []*model.Like
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.db.WithContext(gctx).
			Where("tweet_id IN ?", tweetIds).
			Find(&medias).Error
	})
	g.Go(func() error {
		return c.db.WithContext(gctx).
			Where("id IN ?", authorIds).
			Find(&authors).Error
	})
	g.Go(func() error {
		// Preload resolves the liking users' names in one extra query
		// instead of one per like.
		return c.db.WithContext(gctx).Preload("User").
			Where("tweet_id IN ?", tweetIds).
			Find(&likes).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authorById := make(map[int]*model.User, len(authors))
	for _, author := range authors {
		authorById[author.Id] = author
	}
	attachmentsByTweet := make(map[int][]string, len(medias))
	for _, media := range medias {
		if media.TweetId == nil {
			continue
		}
		attachmentsByTweet[*media.TweetId] = append(
			attachmentsByTweet[*media.TweetId],
			c.store.URL(mediaBase, media.FileName()),
		)
	}
	likesByTweet := make(map[int][]model.LikeInfo, len(likes))
	for _, like := range likes {
		info := model.LikeInfo{UserId: like.UserId}
		if like.User != nil {
			info.Name = like.User.Name
		}
		likesByTweet[like.TweetId] = append(likesByTweet[like.TweetId], info)
	}

	result := make([]*model.TweetInfo, 0, len(tweets))
	for _, tweet := range tweets {
		info := &model.TweetInfo{
			Id:          tweet.Id,
			Content:     tweet.Content,
			Attachments: []string{},
			Likes:       []model.LikeInfo{},
		}
		if author, ok := authorById[tweet.AuthorId]; ok {
			info.Author = model.Author{Id: author.Id, Name: author.Name}
		}
		if attachments, ok := attachmentsByTweet[tweet.Id]; ok {
			info.Attachments = attachments
		}
		if tweetLikes, ok := likesByTweet[tweet.Id]; ok {
			info.Likes = tweetLikes
		}
		result = append(result, info)
	}
	return result, nil
}
