package view

type WssMerchantLevel string

const (
	LevelUnassessed WssMerchantLevel = "UNASSESSED"
	LevelBan        WssMerchantLevel = "BAN"
	LevelBronze     WssMerchantLevel = "BRONZE"
	LevelSilver     WssMerchantLevel = "SILVER"
	LevelGold       WssMerchantLevel = "GOLD"
	LevelPlatinum   WssMerchantLevel = "PLATINUM"
)

var wssMerchantLevelRank = map[WssMerchantLevel]int{
	LevelUnassessed: 1,
	LevelBan:        2,
	LevelBronze:     3,
	LevelSilver:     4,
	LevelGold:       5,
	LevelPlatinum:   6,
}

// AssessedLevels lists tiers from worst to best, one per threshold table entry.
var AssessedLevels = []WssMerchantLevel{LevelBan, LevelBronze, LevelSilver, LevelGold, LevelPlatinum}

// Rank returns 0 for unknown levels.
func (l WssMerchantLevel) Rank() int {
	return wssMerchantLevelRank[l]
}

func (l WssMerchantLevel) Ptr() *WssMerchantLevel {
	return &l
}

type MetricDirection string

const (
	DirectionAscending  MetricDirection = "asc"
	DirectionDescending MetricDirection = "desc"
)

// Thresholds holds the BAN, BRONZE, SILVER, GOLD and PLATINUM cut points of a metric.
type Thresholds [5]float64

func (t Thresholds) Best() float64 {
	return t[len(t)-1]
}
