package view

const WssMissingScoreIndicator = "-"

type ScoreData struct {
	CurrentLevel        *WssMerchantLevel `json:"currentLevel"`
	CurrentScoreDisplay *string           `json:"currentScoreDisplay"`
	GoalLevel           *WssMerchantLevel `json:"goalLevel"`
	GoalScoreDisplay    string            `json:"goalScoreDisplay"`
}

type MetricName string

const (
	MetricUserRating                 MetricName = "userRating"
	MetricOrderFulfillmentRate       MetricName = "orderFultillmentRate"
	MetricValidTrackingRate          MetricName = "validTrackingRate"
	MetricProductQualityRefundRate   MetricName = "productQualityRefundRate"
	MetricProductLogisticsRefundRate MetricName = "productLogisticsRefundRate"
	MetricFulfillmentSpeed           MetricName = "fulfillmentSpeed"
	MetricUnderperformingProducts    MetricName = "underperformingProducts"
)

type MetricScores map[MetricName]ScoreData

type MerchantScoreSummary struct {
	MerchantId       string            `json:"merchantId"`
	Level            *WssMerchantLevel `json:"level"`
	PrevLevel        *WssMerchantLevel `json:"prevLevel"`
	LastUpdatedStats string            `json:"lastUpdatedStats"`
	Metrics          MetricScores      `json:"metrics"`
}

type ClassifyReq struct {
	Metric        MetricName      `json:"metric,omitempty"`
	Value         *float64        `json:"value"`
	Thresholds    []float64       `json:"thresholds,omitempty" jsonschema:"minItems=5,maxItems=5"`
	Direction     MetricDirection `json:"direction,omitempty" jsonschema:"enum=asc,enum=desc"`
	DisplayFormat string          `json:"displayFormat,omitempty"`
}

type MetricThresholds struct {
	Metric     MetricName      `json:"metric"`
	Thresholds Thresholds      `json:"thresholds"`
	Direction  MetricDirection `json:"direction"`
}
