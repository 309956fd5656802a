package utils

import (
	"go.uber.org/zap"
)

// InitLogger はグローバルの zap ロガーを初期化する
func InitLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
