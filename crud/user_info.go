package crud

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/DanteA11/TweetsApi/model"
)

// GetFullUserInfo assembles a user profile with both directions of the
// follow graph. Passing a pre-loaded user skips the lookup. Returns nil
// without error when the user does not exist.
//
// The two list queries are independent and run concurrently; both are
// joined before the profile is returned.
func (c *Controller) GetFullUserInfo(ctx context.Context, userId int, user *model.User) (*model.UserInfo, error) {
	if user == nil {
		var err error
		user, err = GetByID[model.User](ctx, c.db, userId)
		if err != nil {
			return nil, err
		}
		if user == nil {
			logrus.WithField("user_id", userId).Info("user not found")
			return nil, nil
		}
	}

	info := &model.UserInfo{
		Id:        user.Id,
		Name:      user.Name,
		Followers: []model.Author{},
		Following: []model.Author{},
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.db.WithContext(gctx).Model(&model.User{}).
			Select("users.id, users.name").
			Joins("JOIN subscribes ON subscribes.author_id = users.id").
			Where("subscribes.follower_id = ?", userId).
			Find(&info.Following).Error
	})
	g.Go(func() error {
		return c.db.WithContext(gctx).Model(&model.User{}).
			Select("users.id, users.name").
			Joins("JOIN subscribes ON subscribes.follower_id = users.id").
			Where("subscribes.author_id = ?", userId).
			Find(&info.Followers).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return info, nil
}
