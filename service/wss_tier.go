package service

import (
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
)

// GetLevel classifies a higher-is-better value.
func GetLevel(value float64, thresholds view.Thresholds) view.WssMerchantLevel {
	if value < thresholds[0] {
		return view.LevelBan
	} else if value >= thresholds[0] && value < thresholds[1] {
		return view.LevelBronze
	} else if value >= thresholds[1] && value < thresholds[2] {
		return view.LevelSilver
	} else if value >= thresholds[2] && value < thresholds[3] {
		return view.LevelGold
	} else if value >= thresholds[3] {
		return view.LevelPlatinum
	}
	// NaN
	return view.LevelUnassessed
}

// GetLevelDesc classifies a lower-is-better value.
func GetLevelDesc(value float64, thresholds view.Thresholds) view.WssMerchantLevel {
	if value > thresholds[0] {
		return view.LevelBan
	} else if value <= thresholds[0] && value > thresholds[1] {
		return view.LevelBronze
	} else if value <= thresholds[1] && value > thresholds[2] {
		return view.LevelSilver
	} else if value <= thresholds[2] && value > thresholds[3] {
		return view.LevelGold
	} else if value <= thresholds[3] {
		return view.LevelPlatinum
	}
	return view.LevelUnassessed
}

func Classify(value float64, thresholds view.Thresholds, direction view.MetricDirection) view.WssMerchantLevel {
	if direction == view.DirectionDescending {
		return GetLevelDesc(value, thresholds)
	}
	return GetLevel(value, thresholds)
}

type Goal struct {
	Level *view.WssMerchantLevel
	Score float64
}

func ComputeGoal(currentScore *float64, thresholds view.Thresholds, direction view.MetricDirection) Goal {
	currentLevel := view.LevelUnassessed
	if currentScore != nil {
		currentLevel = Classify(*currentScore, thresholds, direction)
	}

	if currentScore != nil {
		atBest := *currentScore >= thresholds.Best()
		if direction == view.DirectionDescending {
			atBest = *currentScore <= thresholds.Best()
		}
		if atBest {
			return Goal{Level: nil, Score: thresholds.Best()}
		}
	}

	index := -1
	for i, l := range view.AssessedLevels {
		if l == currentLevel {
			index = i
			break
		}
	}
	last := len(view.AssessedLevels) - 1

	if index+1 > last {
		return Goal{Level: view.LevelPlatinum.Ptr(), Score: thresholds[last]}
	}
	if index < 0 {
		// unassessed merchants aim at the GOLD/PLATINUM boundary
		return Goal{Level: view.LevelPlatinum.Ptr(), Score: thresholds[last-1]}
	}
	return Goal{Level: view.AssessedLevels[index+1].Ptr(), Score: thresholds[index]}
}

type ScoreArgs struct {
	CurrentScore  *float64
	Thresholds    view.Thresholds
	DisplayFormat string
	Direction     view.MetricDirection
}

func FormatScore(args ScoreArgs) view.ScoreData {
	var result view.ScoreData
	if args.CurrentScore != nil {
		result.CurrentLevel = Classify(*args.CurrentScore, args.Thresholds, args.Direction).Ptr()
		result.CurrentScoreDisplay = utils.StringPtr(utils.FormatNumber(*args.CurrentScore, args.DisplayFormat))
	}

	goal := ComputeGoal(args.CurrentScore, args.Thresholds, args.Direction)
	result.GoalLevel = goal.Level
	if goal.Score == 1 && args.DisplayFormat == formatPercent {
		result.GoalScoreDisplay = "100%"
	} else {
		result.GoalScoreDisplay = utils.FormatNumber(goal.Score, args.DisplayFormat)
	}
	return result
}

func LevelGt(a *view.WssMerchantLevel, b *view.WssMerchantLevel) bool {
	if a == nil || b == nil || *a == "" || *b == "" {
		return false
	}
	return a.Rank() > b.Rank()
}

func IsAtRisk(level *view.WssMerchantLevel) bool {
	return level != nil && *level == view.LevelBan
}

func IsBanned(state view.CommerceMerchantState) bool {
	return state == view.MerchantStateDisabled
}
