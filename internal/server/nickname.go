package server

import "math/rand"

// 兜底昵称词库，玩家没填名字时随机分配
var (
	nickAdjectives = []string{
		"微醺的", "嗨翻的", "社牛的", "慢热的", "戏精的",
		"上头的", "佛系的", "话痨的", "高能的", "摸鱼的",
		"氛围组", "卷王级", "开挂的", "躺平的", "隐身的",
	}

	nickNouns = []string{
		"派对鹅", "柠檬精", "气氛担当", "麦霸", "锦鲤",
		"吃瓜侠", "夜猫子", "小杯王", "骰子手", "皮皮虾",
		"显眼包", "乐子人", "卧底苗子", "转盘之神", "白板选手",
	}
)

// GenerateNickname 生成随机昵称
func GenerateNickname() string {
	adj := nickAdjectives[rand.Intn(len(nickAdjectives))]
	noun := nickNouns[rand.Intn(len(nickNouns))]
	return adj + noun
}
