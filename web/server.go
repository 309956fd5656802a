// Package web は keep-alive と外部スケジューラ向けの HTTP エンドポイント。
package web

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"takubot/forum"
	"takubot/model"
)

// SyncRunner は /sync から起動する同期ジョブ
type SyncRunner interface {
	Sync(ctx context.Context, channelID string) forum.Result
}

// Server は echo を薄く包んだ HTTP サーバ
type Server struct {
	echo      *echo.Echo
	session   *discordgo.Session
	syncer    SyncRunner
	cfg       model.Web
	channelID string
	startedAt time.Time
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(session *discordgo.Session, syncer SyncRunner, cfg model.Web, forumChannelID string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		session:   session,
		syncer:    syncer,
		cfg:       cfg,
		channelID: forumChannelID,
		startedAt: time.Now(),
	}

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.GET("/sync", s.handleSync)

	return s
}

// Start は HTTP サーバを起動する（ブロッキング）
func (s *Server) Start() error {
	return s.echo.Start(":" + s.cfg.Port)
}

// Shutdown は HTTP サーバを停止する
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleRoot(c echo.Context) error {
	botName := "takubot"
	guilds := 0
	if s.session != nil && s.session.State != nil {
		if s.session.State.User != nil {
			botName = s.session.State.User.Username
		}
		guilds = len(s.session.State.Guilds)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "Bot is running!",
		"botName": botName,
		"servers": guilds,
		"uptime":  time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleSync は共有シークレットで保護された同期トリガー。
// 外部スケジューラ（cron-job.org など）から叩く想定
func (s *Server) handleSync(c echo.Context) error {
	secret := c.QueryParam("secret")
	if s.cfg.SyncSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.SyncSecret)) != 1 {
		return c.JSON(http.StatusForbidden, map[string]any{
			"status": "forbidden",
		})
	}

	if s.syncer == nil || s.channelID == "" {
		zap.S().Errorw("同期の設定が不足", "channel", s.channelID)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"status": "error",
		})
	}

	result := s.syncer.Sync(c.Request().Context(), s.channelID)
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"added":   result.Added,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	})
}
