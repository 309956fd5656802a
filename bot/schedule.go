package bot

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"takubot/config"
	"takubot/forum"
)

// startSchedule は毎日の定期同期を仕込む
func startSchedule(syncer *forum.Syncer) *cron.Cron {
	forumCfg := config.Cfg.Forum
	if forumCfg.ChannelID == "" {
		zap.S().Infow("フォーラムチャンネル未設定のため定期同期は無効")
		return nil
	}

	loc, err := time.LoadLocation(forumCfg.Timezone)
	if err != nil {
		zap.S().Warnw("タイムゾーンの解釈に失敗。UTC で動かします", "tz", forumCfg.Timezone, "error", err)
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(forumCfg.Schedule, func() {
		zap.S().Infow("定期フォーラム同期を開始", "channel", forumCfg.ChannelID)
		syncer.Sync(context.Background(), forumCfg.ChannelID)
	})
	if err != nil {
		zap.S().Errorw("スケジュールの登録に失敗", "schedule", forumCfg.Schedule, "error", err)
		return nil
	}

	c.Start()
	zap.S().Infow("定期フォーラム同期を登録", "schedule", forumCfg.Schedule, "tz", loc.String())
	return c
}
