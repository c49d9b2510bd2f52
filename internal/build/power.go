package build

import "growhub/pkg/models"

// CalculatePowerCost turns a build's total draw into running costs.
// Months are 30 days, years are 12 such months. Pure and total; the
// caller owns input validation.
func CalculatePowerCost(totalWatts, hoursPerDay, ratePerKwh float64) models.PowerCostCalculation {
	dailyKwh := totalWatts * hoursPerDay / 1000
	monthlyKwh := dailyKwh * 30
	dailyCost := dailyKwh * ratePerKwh
	monthlyCost := monthlyKwh * ratePerKwh

	return models.PowerCostCalculation{
		DailyConsumption:   dailyKwh,
		MonthlyConsumption: monthlyKwh,
		DailyCost:          dailyCost,
		MonthlyCost:        monthlyCost,
		AnnualCost:         monthlyCost * 12,
		ElectricityRate:    ratePerKwh,
	}
}
