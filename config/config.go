package config

import (
	"takubot/model"

	"github.com/spf13/viper"
)

var Cfg model.Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("forum.schedule", "0 9 * * *")
	viper.SetDefault("forum.timezone", "Asia/Tokyo")
	viper.SetDefault("forum.marketplace_domains", []string{"booth.pm", "talto.cc"})
	viper.SetDefault("forum.max_threads", 15)
	viper.SetDefault("notion.image_properties", []string{"画像", "サムネイル", "メイン画像"})
	viper.SetDefault("web.port", "3000")
	viper.SetDefault("table.max_members", 10)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
