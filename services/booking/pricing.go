package booking

import "mentorhub/models"

// Price computes the cost split for a session: base price pro-rated from the
// hourly rate, platform fee as commission on the base, and their sum. No
// rounding is applied; callers may see fractional cents.
func Price(hourlyRate float64, durationMinutes int, commissionRate float64) models.PricingResult {
	base := hourlyRate * float64(durationMinutes) / 60
	fee := base * commissionRate
	return models.PricingResult{
		BasePrice:      base,
		PlatformFee:    fee,
		CommissionRate: commissionRate,
		FinalPrice:     base + fee,
	}
}
