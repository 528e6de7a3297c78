package estimate

import (
	"math"

	"github.com/civicforum/civic-engine/pkg/models"
)

// The net-worth series covers a fixed six-year window.
const (
	netWorthStartYear = 2019
	netWorthYears     = 6
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// sp500Base is the fixed reference index series the estimated portfolio
// is compared against, normalized to 100.
var sp500Base = []float64{95, 97, 100, 99, 102, 104, 103, 105, 103, 106, 108, 110}

// Historical generates the full estimated financial picture for one
// senator: net-worth history, monthly trading activity, month-over-month
// performance against the reference index, and a summary block.
func Historical(bioguideID string) models.HistoricalData {
	seed := Seed(bioguideID)

	netWorth := netWorthHistory(seed)
	activity := tradingActivity(seed)
	performance := tradingPerformance(activity)
	summary := tradingSummary(seed, activity)

	return models.HistoricalData{
		BioguideID:         bioguideID,
		NetWorth:           netWorth,
		TradingActivity:    activity,
		TradingPerformance: performance,
		TradingSummary:     summary,
		Source:             models.SourceEstimated,
		Disclaimer:         Disclaimer,
	}
}

// netWorthHistory scales a base value ($500K-$50M) by the seed, then
// compounds a seed-derived growth rate (5-15%) with small per-year
// variance (90-109%). Asset and liability bands are fixed percentages
// of each year's figure.
func netWorthHistory(seed int) []models.NetWorthPoint {
	baseNetWorth := float64(500000 + (seed%100)*500000)
	growthRate := 0.05 + float64(seed%20)*0.005

	points := make([]models.NetWorthPoint, 0, netWorthYears)
	for i := 0; i < netWorthYears; i++ {
		multiplier := math.Pow(1+growthRate, float64(i))
		variance := 0.9 + float64((seed+i)%20)/100
		current := math.Round(baseNetWorth * multiplier * variance)

		points = append(points, models.NetWorthPoint{
			Year:           netWorthStartYear + i,
			NetWorth:       int64(current),
			AssetsMin:      int64(math.Round(current * 0.9)),
			AssetsMax:      int64(math.Round(current * 1.3)),
			LiabilitiesMin: int64(math.Round(current * 0.05)),
			LiabilitiesMax: int64(math.Round(current * 0.15)),
		})
	}
	return points
}

// tradingActivity produces twelve months of trade counts (2-9 per
// month), a seed-derived buy/sell split, and a portfolio index that
// compounds a bounded monthly return (-3% to +6%) from 100.
func tradingActivity(seed int) []models.TradingActivityPoint {
	points := make([]models.TradingActivityPoint, 0, len(months))
	cumulative := 100.0

	for i := 0; i < len(months); i++ {
		trades := 2 + (seed+i)%8
		buys := int(math.Ceil(float64(trades) * (0.4 + float64((seed+i)%30)/100)))
		sells := trades - buys

		monthlyGain := float64(-3 + (seed+i)%10)
		cumulative *= 1 + monthlyGain/100

		points = append(points, models.TradingActivityPoint{
			Month:          months[i],
			Trades:         trades,
			Buys:           buys,
			Sells:          sells,
			EstimatedValue: math.Round(cumulative*10) / 10,
			SP500:          sp500Base[i],
		})
	}
	return points
}

// tradingPerformance converts the cumulative index series into
// month-over-month returns for both the portfolio and the reference.
func tradingPerformance(activity []models.TradingActivityPoint) []models.TradingPerformancePoint {
	points := make([]models.TradingPerformancePoint, 0, len(activity))
	prevSenator := 100.0
	prevSP500 := 95.0

	for i, month := range activity {
		var senatorReturn, sp500Return float64
		if i == 0 {
			senatorReturn = (month.EstimatedValue - 100) / 100 * 100
			sp500Return = (month.SP500 - 95) / 95 * 100
		} else {
			senatorReturn = (month.EstimatedValue - prevSenator) / prevSenator * 100
			sp500Return = (month.SP500 - prevSP500) / prevSP500 * 100
		}

		points = append(points, models.TradingPerformancePoint{
			Month:         month.Month,
			SenatorReturn: math.Round(senatorReturn*10) / 10,
			SP500Return:   math.Round(sp500Return*10) / 10,
			TradeCount:    month.Trades,
		})

		prevSenator = month.EstimatedValue
		prevSP500 = month.SP500
	}
	return points
}

func tradingSummary(seed int, activity []models.TradingActivityPoint) models.TradingSummary {
	totalTrades := 0
	for _, month := range activity {
		totalTrades += month.Trades
	}

	finalValue := activity[len(activity)-1].EstimatedValue
	finalSP500 := activity[len(activity)-1].SP500

	sp500ReturnTotal := math.Round((finalSP500-95)/95*10000) / 100
	portfolioReturn := math.Round((finalValue-100)*100) / 100

	return models.TradingSummary{
		TotalTrades:     totalTrades,
		EstimatedGain:   int64(math.Round((finalValue - 100) * 10000)),
		WinRate:         45 + seed%30,
		SP500Comparison: math.Round((portfolioReturn-sp500ReturnTotal)*100) / 100,
	}
}
