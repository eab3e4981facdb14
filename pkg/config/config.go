package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "AVD"

func NewConfig(p string) *viper.Viper {
	envConf := os.Getenv("APP_CONF")
	if envConf == "" {
		envConf = p
	}
	fmt.Println("load conf file:", envConf)
	return getConfig(envConf)
}

func getConfig(path string) *viper.Viper {
	// .env 可选，存在时先注入环境变量，再由 AutomaticEnv 覆盖配置文件
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("load .env error:", err)
	}

	conf := viper.New()
	conf.SetConfigFile(path)
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()
	setDefaults(conf)

	if err := conf.ReadInConfig(); err != nil {
		panic(err)
	}
	return conf
}

func setDefaults(conf *viper.Viper) {
	conf.SetDefault("env", "local")
	conf.SetDefault("http.host", "0.0.0.0")
	conf.SetDefault("http.port", 8000)
	conf.SetDefault("security.jwt.expire_hours", 24)
	conf.SetDefault("data.db.user.driver", "sqlite")
	conf.SetDefault("data.db.user.dsn", "storage/avdportal.db?_pragma=foreign_keys(1)")
	conf.SetDefault("log.log_level", "info")
	conf.SetDefault("log.encoding", "console")
	conf.SetDefault("metrics.enabled", true)
	conf.SetDefault("cors.allow_origins", []string{"*"})
}
