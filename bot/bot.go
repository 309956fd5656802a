package bot

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"takubot/command"
	"takubot/config"
	"takubot/forum"
	"takubot/handler/basic"
	"takubot/handler/synccmd"
	"takubot/handler/table"
	"takubot/notion"
	"takubot/ogp"
	"takubot/store"
	"takubot/utils"
	"takubot/web"
	"takubot/workflow"
)

// Start 起動してシグナルを受けるまで動き続ける
func Start() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}

	err := config.LoadConfig()
	if err != nil {
		zap.S().Errorw("設定ファイルの読み込みに失敗", "error", err)
		return
	}

	// 依存の組み立て
	draftStore := store.NewDraftStore()
	machine := workflow.NewMachine(draftStore)
	notionSvc := notion.NewService(config.Cfg.Notion)

	// ハンドラ登録
	basic.RegisterHandlers()
	table.RegisterHandlers(machine, notionSvc, config.Cfg.Table.MaxMembers)

	dg, err := discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		zap.S().Errorw("Discord セッションの作成に失敗", "error", err)
		return
	}

	registerEventHandlers(dg)

	syncer := forum.NewSyncer(
		forum.NewSessionThreadSource(dg),
		notionSvc,
		ogp.NewFetcher(),
		config.Cfg.Forum,
	)
	synccmd.RegisterHandlers(syncer, config.Cfg.Forum.ChannelID)

	// ログインに失敗したら動き続けても仕方がないので落とす
	err = dg.Open()
	if err != nil {
		zap.S().Fatalw("Discord への接続に失敗", "error", err)
	}

	for _, guildID := range config.Cfg.Commands.Allowguilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				zap.S().Fatalw("コマンドの登録に失敗", "command", cmd.Name, "guild", guildID, "error", err)
			}
		}
	}

	scheduler := startSchedule(syncer)

	srv := web.NewServer(dg, syncer, config.Cfg.Web, config.Cfg.Forum.ChannelID)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorw("HTTP サーバが停止", "error", err)
		}
	}()

	zap.S().Infow("Bot is now running. Press CTRL-C to exit.",
		"guilds", len(config.Cfg.Commands.Allowguilds),
		"port", config.Cfg.Web.Port)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if scheduler != nil {
		scheduler.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Warnw("HTTP サーバの停止に失敗", "error", err)
	}
	dg.Close()
}
