package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 3000
	defaultMaxConnections = 2048
	defaultPublicURL      = "http://localhost:3000"

	defaultGracePeriod        = 300 // 空房间保留时间（秒）
	defaultCollectDelay       = 1500
	defaultEliminationDelay   = 3000
	defaultQuestionMultiplier = 5

	defaultMsgPerSecond  = 20
	defaultConnPerSecond = 10
	defaultConnPerMinute = 60
	defaultBanDuration   = 300
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig HTTP/WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
	PublicURL      string `yaml:"public_url"` // 二维码中使用的对外地址
}

// RedisConfig Redis 配置（仅用于可选的对局统计，留空则关闭）
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	EmptyRoomGracePeriod int `yaml:"empty_room_grace_period"` // 空房间保留时间（秒）
	CollectDelay         int `yaml:"collect_delay"`           // 收题完成到第一题的间隔（毫秒）
	EliminationDelay     int `yaml:"elimination_delay"`       // 出局公告到下一轮的间隔（毫秒）
	QuestionMultiplier   int `yaml:"question_multiplier"`     // 热座题目数 = 玩家数 × 该系数
}

// SecurityConfig 连接与消息限制配置
type SecurityConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MsgPerSecond   int      `yaml:"msg_per_second"`  // 单连接每秒消息上限
	ConnPerSecond  int      `yaml:"conn_per_second"` // 单 IP 每秒连接上限
	ConnPerMinute  int      `yaml:"conn_per_minute"` // 单 IP 每分钟连接上限
	BanDuration    int      `yaml:"ban_duration"`    // 超限封禁时长（秒）
}

// GracePeriodDuration 返回空房间保留时长
func (c *GameConfig) GracePeriodDuration() time.Duration {
	return time.Duration(c.EmptyRoomGracePeriod) * time.Second
}

// CollectDelayDuration 返回收题完成后的延迟时长
func (c *GameConfig) CollectDelayDuration() time.Duration {
	return time.Duration(c.CollectDelay) * time.Millisecond
}

// EliminationDelayDuration 返回出局公告后的延迟时长
func (c *GameConfig) EliminationDelayDuration() time.Duration {
	return time.Duration(c.EliminationDelay) * time.Millisecond
}

// BanDurationTime 返回封禁时长
func (c *SecurityConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// applyDefaults 填充未设置的默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = defaultMaxConnections
	}
	if c.Server.PublicURL == "" {
		c.Server.PublicURL = defaultPublicURL
	}
	if c.Game.EmptyRoomGracePeriod == 0 {
		c.Game.EmptyRoomGracePeriod = defaultGracePeriod
	}
	if c.Game.CollectDelay == 0 {
		c.Game.CollectDelay = defaultCollectDelay
	}
	if c.Game.EliminationDelay == 0 {
		c.Game.EliminationDelay = defaultEliminationDelay
	}
	if c.Game.QuestionMultiplier == 0 {
		c.Game.QuestionMultiplier = defaultQuestionMultiplier
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.MsgPerSecond == 0 {
		c.Security.MsgPerSecond = defaultMsgPerSecond
	}
	if c.Security.ConnPerSecond == 0 {
		c.Security.ConnPerSecond = defaultConnPerSecond
	}
	if c.Security.ConnPerMinute == 0 {
		c.Security.ConnPerMinute = defaultConnPerMinute
	}
	if c.Security.BanDuration == 0 {
		c.Security.BanDuration = defaultBanDuration
	}
}

// applyEnv 环境变量覆盖（部署时无需改配置文件）
func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("PUBLIC_URL"); v != "" {
		c.Server.PublicURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("SECURITY_ALLOWED_ORIGINS"); v != "" {
		c.Security.AllowedOrigins = strings.Split(v, ",")
	}
}
