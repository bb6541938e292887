package locale

type table struct {
	wallet, keys, badge, phone string
	checklistName              string
	groupLabel                 string
	notifyTitle, notifyBody    string
	upgradeHint                string
}

var tables = map[Language]table{
	ZhTW: {
		wallet:        "錢包",
		keys:          "鑰匙",
		badge:         "員工證",
		phone:         "手機",
		checklistName: "出門點點名",
		groupLabel:    "預設",
		notifyTitle:   "準備出門了嗎？",
		notifyBody:    "請點開檢查您的上班清單。",
		upgradeHint:   "升級到付費版以解鎖無限清單與分類套組！",
	},
	ZhCN: {
		wallet:        "钱包",
		keys:          "钥匙",
		badge:         "员工证",
		phone:         "手机",
		checklistName: "出门点点名",
		groupLabel:    "默认",
		notifyTitle:   "准备出门了吗？",
		notifyBody:    "请点开检查您的上班清单。",
		upgradeHint:   "升级到付费版以解锁无限清单与分类套组！",
	},
	En: {
		wallet:        "Wallet",
		keys:          "Keys",
		badge:         "Badge",
		phone:         "Phone",
		checklistName: "Check Me Out",
		groupLabel:    "Default",
		notifyTitle:   "Ready to go out?",
		notifyBody:    "Please check your checklist.",
		upgradeHint:   "Upgrade to Premium to unlock unlimited checklists and group templates!",
	},
}
