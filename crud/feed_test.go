package crud

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanteA11/TweetsApi/model"
)

func TestGetFullUserInfo_Missing(t *testing.T) {
	ctrl, _, _ := newTestController(t)

	info, err := ctrl.GetFullUserInfo(context.Background(), 999, nil)
	assert.Nil(t, err)
	assert.Nil(t, info)
}

func TestGetFullUserInfo(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")
	bob := seedUser(t, db, "bob", "bob_key")
	carol := seedUser(t, db, "carol", "carol_key")

	// alice follows bob, carol follows alice.
	ok, err := ctrl.AddSubscribe(context.Background(), alice.Id, bob.Id)
	require.Nil(t, err)
	require.True(t, ok)
	ok, err = ctrl.AddSubscribe(context.Background(), carol.Id, alice.Id)
	require.Nil(t, err)
	require.True(t, ok)

	info, err := ctrl.GetFullUserInfo(context.Background(), alice.Id, nil)
	assert.Nil(t, err)
	require.NotNil(t, info)
	assert.Equal(t, alice.Id, info.Id)
	assert.Equal(t, "alice", info.Name)
	assert.Equal(t, []model.Author{{Id: bob.Id, Name: "bob"}}, info.Following)
	assert.Equal(t, []model.Author{{Id: carol.Id, Name: "carol"}}, info.Followers)
}

func TestGetFullUserInfo_PreloadedUserSkipsLookup(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")

	info, err := ctrl.GetFullUserInfo(context.Background(), alice.Id, alice)
	assert.Nil(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "alice", info.Name)
	assert.Empty(t, info.Followers)
	assert.Empty(t, info.Following)
}

func TestGetTweetsInfo_Empty(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")

	tweets, err := ctrl.GetTweetsInfo(context.Background(), alice.Id, "http://host/medias")
	assert.Nil(t, err)
	assert.Equal(t, []*model.TweetInfo{}, tweets)
}

func TestGetTweetsInfo_FollowedAndOwn(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")
	bob := seedUser(t, db, "bob", "bob_key")
	carol := seedUser(t, db, "carol", "carol_key")

	ok, err := ctrl.AddSubscribe(context.Background(), alice.Id, bob.Id)
	require.Nil(t, err)
	require.True(t, ok)

	bobTweet := seedTweet(t, db, bob.Id, "from bob")
	ownTweet := seedTweet(t, db, alice.Id, "from alice")
	// carol is not followed by alice, her tweet must stay invisible.
	seedTweet(t, db, carol.Id, "from carol")

	tweets, err := ctrl.GetTweetsInfo(context.Background(), alice.Id, "http://host/medias")
	assert.Nil(t, err)
	require.Len(t, tweets, 2)

	seen := map[int]string{}
	for _, tweet := range tweets {
		seen[tweet.Id] = tweet.Content
	}
	assert.Equal(t, map[int]string{
		bobTweet.Id: "from bob",
		ownTweet.Id: "from alice",
	}, seen)
}

func TestGetTweetsInfo_OrderedByLikeCount(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")
	bob := seedUser(t, db, "bob", "bob_key")
	carol := seedUser(t, db, "carol", "carol_key")

	ok, err := ctrl.AddSubscribe(context.Background(), alice.Id, bob.Id)
	require.Nil(t, err)
	require.True(t, ok)

	quiet := seedTweet(t, db, bob.Id, "quiet")
	popular := seedTweet(t, db, bob.Id, "popular")
	for _, liker := range []int{alice.Id, carol.Id} {
		ok, err := ctrl.CreateLike(context.Background(), liker, popular.Id)
		require.Nil(t, err)
		require.True(t, ok)
	}

	tweets, err := ctrl.GetTweetsInfo(context.Background(), alice.Id, "http://host/medias")
	assert.Nil(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, popular.Id, tweets[0].Id)
	assert.Equal(t, quiet.Id, tweets[1].Id)

	likers := map[int]string{}
	for _, like := range tweets[0].Likes {
		likers[like.UserId] = like.Name
	}
	assert.Equal(t, map[int]string{alice.Id: "alice", carol.Id: "carol"}, likers)
}

func TestGetTweetsInfo_Hydration(t *testing.T) {
	ctrl, db, _ := newTestController(t)
	alice := seedUser(t, db, "alice", "alice_key")
	bob := seedUser(t, db, "bob", "bob_key")

	ok, err := ctrl.AddSubscribe(context.Background(), alice.Id, bob.Id)
	require.Nil(t, err)
	require.True(t, ok)

	mediaId, err := ctrl.AddMedia(context.Background(), bob.Id, "jpg", []byte("pic"))
	require.Nil(t, err)
	tweetId, ok, err := ctrl.AddTweet(context.Background(), bob.Id, "with pic", []int{mediaId})
	require.Nil(t, err)
	require.True(t, ok)

	ok, err = ctrl.CreateLike(context.Background(), alice.Id, tweetId)
	require.Nil(t, err)
	require.True(t, ok)

	tweets, err := ctrl.GetTweetsInfo(context.Background(), alice.Id, "http://host/medias")
	assert.Nil(t, err)
	require.Len(t, tweets, 1)

	tweet := tweets[0]
	assert.Equal(t, tweetId, tweet.Id)
	assert.Equal(t, "with pic", tweet.Content)
	assert.Equal(t, model.Author{Id: bob.Id, Name: "bob"}, tweet.Author)
	assert.Equal(t, []string{fmt.Sprintf("http://host/medias/%d.jpg", mediaId)}, tweet.Attachments)
	assert.Equal(t, []model.LikeInfo{{UserId: alice.Id, Name: "alice"}}, tweet.Likes)
}
