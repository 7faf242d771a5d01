package janitor

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/DanteA11/TweetsApi/filestore"
	"github.com/DanteA11/TweetsApi/model"
)

// Janitor removes media that was uploaded but never attached to a tweet.
// Unattached rows older than the retention window are deleted together
// with their files on an hourly schedule.
type Janitor struct {
	db        *gorm.DB
	store     filestore.FileStore
	retention time.Duration
	cron      *cron.Cron
}

func New(db *gorm.DB, store filestore.FileStore, retention time.Duration) *Janitor {
	return &Janitor{
		db:        db,
		store:     store,
		retention: retention,
		cron:      cron.New(),
	}
}

// Start schedules the hourly purge. The first run happens an hour in, not
// immediately; a fresh process has nothing old enough to purge anyway.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		purged, err := j.PurgeOrphans(context.Background())
		if err != nil {
			logrus.WithError(err).Error("orphan media purge failed")
			return
		}
		if purged > 0 {
			logrus.WithField("purged", purged).Info("orphan media purged")
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running purge to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// PurgeOrphans deletes every unattached media row older than the retention
// window, then removes the stored files. Returns the number of rows purged.
func (j *Janitor) PurgeOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-j.retention)

	var orphans []*model.Media
	err := j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tweet_id IS NULL AND created_at < ?", cutoff).
			Find(&orphans).Error; err != nil {
			return err
		}
		if len(orphans) == 0 {
			return nil
		}
		ids := make([]int, 0, len(orphans))
		for _, orphan := range orphans {
			ids = append(ids, orphan.Id)
		}
		// Re-check tweet_id in the delete so a row attached between the
		// select and here survives.
		return tx.
			Where("id IN ? AND tweet_id IS NULL", ids).
			Delete(&model.Media{}).Error
	})
	if err != nil {
		return 0, err
	}

	for _, orphan := range orphans {
		if err := j.store.Remove(orphan.FileName()); err != nil {
			logrus.WithError(err).WithField("media_id", orphan.Id).
				Warn("failed to remove orphan media file")
		}
	}
	return len(orphans), nil
}
