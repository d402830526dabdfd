package game

import "github.com/palemoky/party-games/internal/protocol"

// hotseatQuestions 热座游戏内置题库
var hotseatQuestions = []string{
	"谁最有可能进局子？",
	"谁最有可能成为千万富翁？",
	"谁最有可能忘记对象的生日？",
	"谁最有可能在丧尸围城中活到最后？",
	"谁最有可能看电影看哭？",
	"谁最有可能在聚会上睡着？",
	"谁最有可能在公共场合社死？",
	"谁最有可能赢下大胃王比赛？",
	"谁最有可能一时冲动闪婚？",
	"谁最有可能弄丢手机？",
	"谁最有可能成为网红？",
	"谁最有可能在不该笑的时候笑场？",
	"谁最有可能纹一个后悔终生的纹身？",
	"谁最有可能在简历上吹牛？",
	"谁唱歌最难听？",
	"谁上厕所时间最长？",
	"谁最有可能今晚打碎东西？",
	"谁的歌单最土？",
	"谁最有可能加入邪教？",
	"谁最有可能三天不洗头？",
	"谁最有可能半夜点外卖？",
	"谁最有可能跟导航吵架？",
	"谁最有可能养十只猫？",
	"谁最有可能明天就辞职？",
}

// wordPairs 卧底游戏词对库，左为平民词，右为卧底词
var wordPairs = [][2]string{
	{"披萨", "馅饼"}, {"微博", "朋友圈"}, {"蝙蝠侠", "超人"},
	{"可乐", "雪碧"}, {"麦当劳", "肯德基"}, {"猫", "狗"},
	{"北京", "上海"}, {"海边", "泳池"}, {"滑雪", "滑冰"},
	{"啤酒", "红酒"}, {"咖啡", "奶茶"}, {"抖音", "快手"},
	{"苹果手机", "安卓手机"}, {"巧克力", "太妃糖"}, {"牙医", "医生"},
	{"公交", "地铁"}, {"吉他", "钢琴"}, {"足球", "篮球"},
	{"包子", "饺子"}, {"春节", "元旦"},
	{"婚礼", "生日宴"}, {"小说", "电影"}, {"眼镜", "隐形眼镜"},
	{"纹身", "打耳洞"}, {"黄油", "奶酪"}, {"香槟", "气泡水"},
	{"火锅", "麻辣烫"}, {"网约车", "出租车"}, {"民宿", "酒店"},
	{"百度", "谷歌"}, {"微信", "QQ"}, {"马里奥", "索尼克"},
	{"哈利波特", "指环王"}, {"星球大战", "星际迷航"},
	{"薯条", "薯片"}, {"网易云", "QQ音乐"},
	{"牛仔裤", "运动裤"}, {"板鞋", "帆布鞋"}, {"寿司", "紫菜包饭"},
	{"汉堡", "热狗"}, {"煎饼", "鸡蛋灌饼"}, {"冰淇淋", "刨冰"},
	{"烧烤", "铁板烧"}, {"白酒", "黄酒"}, {"KTV", "猜歌"},
	{"斗地主", "德州扑克"}, {"大富翁", "UNO"}, {"密室逃脱", "剧本杀"},
	{"露营", "野餐"}, {"自行车", "滑板车"}, {"飞机", "高铁"},
	{"爬山", "看海"}, {"夏天", "春天"}, {"周一", "周二"},
	{"早上", "晚上"}, {"淋浴", "泡澡"}, {"沙发", "躺椅"},
	{"抱枕", "枕头"}, {"毛毯", "被子"}, {"蜡烛", "熏香"},
}

// wheelSegments 转盘扇区配置（双人在线模式，占位符由客户端代入昵称）
var wheelSegments = []protocol.WheelSegment{
	{
		Color: "#e74c3c", Name: "{player1} 遭殃", Count: 1, Target: "player1",
		Texts: []string{"{player1} 喝一杯！", "{player1} 一口闷！"},
	},
	{
		Color: "#f39c12", Name: "{player2} 遭殃", Count: 1, Target: "player2",
		Texts: []string{"{player2} 喝一杯！", "{player2} 一口闷！"},
	},
	{
		Color: "#2ecc71", Name: "平安无事", Count: 0, Target: "none",
		Texts: []string{"这轮没人喝！", "全场休战！"},
	},
	{
		Color: "#3498db", Name: "同甘共苦", Count: 1, Target: "both",
		Texts: []string{"干杯！两个人都喝！", "碰一个，一起喝！"},
	},
	{
		Color: "#9b59b6", Name: "{player1} 做主", Count: 0, Target: "player1_gives",
		Texts: []string{"{player1} 指定对方喝两口！", "{player1} 定一条新规矩！"},
	},
	{
		Color: "#1abc9c", Name: "{player2} 做主", Count: 0, Target: "player2_gives",
		Texts: []string{"{player2} 指定对方喝两口！", "{player2} 定一条新规矩！"},
	},
	{
		Color: "#e67e22", Name: "命运对决", Count: 1, Target: "game",
		Texts: []string{"石头剪刀布，输的喝！", "掰手腕，输的喝！"},
	},
	{
		Color: "#34495e", Name: "大奖还是大劫", Count: 3, Target: "jackpot",
		Texts: []string{"中大奖！{player1} 连喝三杯！", "大劫难逃！两人把杯里的都喝完！"},
	},
}

// WheelConfig 返回转盘配置（只读数据，供入房快照使用）
func WheelConfig() []protocol.WheelSegment {
	return wheelSegments
}
