package catalog

import "relichelper/internal/domain"

// Default returns the catalog seeded on first run. Group numbers pair
// the sets that drop from the same farming location.
func Default() *domain.Catalog {
	return &domain.Catalog{
		RelicSets: []domain.RelicSet{
			{ID: "Passerby", Name: "流雲無痕の過客", Category: domain.CategoryCavern, Group: 3},
			{ID: "Musketeer", Name: "草の穂ガンマン", Category: domain.CategoryCavern, Group: 3},
			{ID: "Knight", Name: "純庭教会の聖騎士", Category: domain.CategoryCavern, Group: 5},
			{ID: "Hunter", Name: "雪の密林の狩人", Category: domain.CategoryCavern, Group: 1},
			{ID: "Champion", Name: "成り上がりチャンピオン", Category: domain.CategoryCavern, Group: 2},
			{ID: "Guard", Name: "吹雪と対峙する兵士", Category: domain.CategoryCavern, Group: 4},
			{ID: "Firesmith", Name: "溶岩で鍛造する火匠", Category: domain.CategoryCavern, Group: 6},
			{ID: "Genius", Name: "星の如く輝く天才", Category: domain.CategoryCavern, Group: 4},
			{ID: "Band", Name: "雷鳴轟くバンド", Category: domain.CategoryCavern, Group: 5},
			{ID: "Eagle", Name: "昼夜の狭間を翔ける鷹", Category: domain.CategoryCavern, Group: 1},
			{ID: "Thief", Name: "流星の跡を追う怪盗", Category: domain.CategoryCavern, Group: 2},
			{ID: "Wastelander", Name: "荒地で盗みを働く廃土客", Category: domain.CategoryCavern, Group: 6},
			{ID: "Longevous", Name: "宝命長存の蒔者", Category: domain.CategoryCavern, Group: 7},
			{ID: "Messenger", Name: "仮想空間を漫遊するメッセンジャー", Category: domain.CategoryCavern, Group: 7},
			{ID: "GrandDuke", Name: "灰燼を燃やす大公", Category: domain.CategoryCavern, Group: 8},
			{ID: "Prisoner", Name: "深い牢獄の囚人", Category: domain.CategoryCavern, Group: 8},
			{ID: "Pioneer", Name: "死水に潜る先駆者", Category: domain.CategoryCavern, Group: 9},
			{ID: "Watchmaker", Name: "夢を弄ぶ時計屋", Category: domain.CategoryCavern, Group: 9},
			{ID: "IronCavalry", Name: "蝗害を一掃せし鉄騎", Category: domain.CategoryCavern, Group: 10},
			{ID: "WindSoaring", Name: "風雲を薙ぎ払う勇烈", Category: domain.CategoryCavern, Group: 10},
			{ID: "Sacerdos", Name: "再び苦難の道を歩む司祭", Category: domain.CategoryCavern, Group: 11},
			{ID: "Scholar", Name: "知識の海に溺れる学者", Category: domain.CategoryCavern, Group: 11},
			{ID: "Hero", Name: "凱歌を揚げる英雄", Category: domain.CategoryCavern, Group: 12},
			{ID: "Poet", Name: "亡国の悲哀を詠う詩人", Category: domain.CategoryCavern, Group: 12},
			{ID: "Warlord", Name: "烈陽と雷鳴の武神", Category: domain.CategoryCavern, Group: 13},
			{ID: "Captain", Name: "荒海を越える船長", Category: domain.CategoryCavern, Group: 13},
			{ID: "Savior", Name: "天地再創の救世主", Category: domain.CategoryCavern, Group: 14},
			{ID: "Hermit", Name: "星の光を隠した隠者", Category: domain.CategoryCavern, Group: 14},
		},
		PlanarSets: []domain.RelicSet{
			{ID: "Herta", Name: "宇宙封印ステーション", Category: domain.CategoryPlanar, Group: 1},
			{ID: "Fleet", Name: "老いぬ者の仙舟", Category: domain.CategoryPlanar, Group: 1},
			{ID: "PanCosmic", Name: "汎銀河商事会社", Category: domain.CategoryPlanar, Group: 3},
			{ID: "Belobog", Name: "建創者のベロブルグ", Category: domain.CategoryPlanar, Group: 4},
			{ID: "Celestial", Name: "天体階差機関", Category: domain.CategoryPlanar, Group: 3},
			{ID: "Salsotto", Name: "自転が止まったサルソット", Category: domain.CategoryPlanar, Group: 4},
			{ID: "Talia", Name: "盗賊公国タリア", Category: domain.CategoryPlanar, Group: 2},
			{ID: "Vonwacq", Name: "生命のウェンワーク", Category: domain.CategoryPlanar, Group: 2},
			{ID: "Rutilant", Name: "星々の競技場", Category: domain.CategoryPlanar, Group: 5},
			{ID: "Keel", Name: "折れた竜骨", Category: domain.CategoryPlanar, Group: 5},
			{ID: "Firmament", Name: "蒼穹戦線グラモス", Category: domain.CategoryPlanar, Group: 6},
			{ID: "Penacony", Name: "夢の地ピノコニー", Category: domain.CategoryPlanar, Group: 6},
			{ID: "Sigonia", Name: "荒涼の惑星ツガンニヤ", Category: domain.CategoryPlanar, Group: 7},
			{ID: "Izumo", Name: "顕世の出雲と高天の神国", Category: domain.CategoryPlanar, Group: 7},
			{ID: "Duran", Name: "奔狼の都藍王朝", Category: domain.CategoryPlanar, Group: 8},
			{ID: "Kalpagni", Name: "劫火と蓮灯の鋳煉宮", Category: domain.CategoryPlanar, Group: 8},
			{ID: "Lushaka", Name: "海に沈んだルサカ", Category: domain.CategoryPlanar, Group: 9},
			{ID: "Wondrous", Name: "奇想天外のバナダイス", Category: domain.CategoryPlanar, Group: 9},
			{ID: "BoneCollection", Name: "静謐な拾骨地", Category: domain.CategoryPlanar, Group: 10},
			{ID: "GiantTree", Name: "深慮に浸る巨樹", Category: domain.CategoryPlanar, Group: 10},
			{ID: "FairyParadise", Name: "夢を紡ぐ妖精の楽園", Category: domain.CategoryPlanar, Group: 11},
			{ID: "DrunkenSea", Name: "酩酊の海域", Category: domain.CategoryPlanar, Group: 11},
			{ID: "Omphalos", Name: "永遠の地オンパロス", Category: domain.CategoryPlanar, Group: 12},
			{ID: "LiveRoom", Name: "天国@配信ルーム", Category: domain.CategoryPlanar, Group: 12},
		},
	}
}
