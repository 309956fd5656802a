package utils

import (
	"slices"

	"takubot/config"
)

// CheckAuth はユーザーが管理系コマンドを実行できるか確認する
func CheckAuth(userID string, roles []string) bool {
	authConfig := config.Cfg.Commands.Auth

	// 開発者かどうか
	if slices.Contains(authConfig.Developers, userID) {
		return true
	}

	// 管理者ロールを持っているか
	for _, role := range roles {
		if slices.Contains(authConfig.AdminsRoles, role) {
			return true
		}
	}

	return false
}
