package rewards

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"card-rewards-api/internal/models"
)

// ExpiryAlerts flags cards whose points expire within thresholdDays of now,
// or have already expired. thresholdDays <= 0 uses the engine default. Cards
// without an expiry date never alert.
func (e *Engine) ExpiryAlerts(cards []models.Card, now time.Time, thresholdDays int) []models.ExpiryAlert {
	if thresholdDays <= 0 {
		thresholdDays = e.opts.ExpiryThresholdDays
	}

	alerts := make([]models.ExpiryAlert, 0)
	for _, card := range cards {
		if card.ExpiryDate == nil {
			continue
		}
		days := DaysUntil(now, *card.ExpiryDate)
		if days > thresholdDays {
			continue
		}
		alerts = append(alerts, e.alertFor(card, days, thresholdDays))
	}

	sortAlerts(alerts)
	return alerts
}

// ExpirySchedule lists every card with an expiry date, including those far
// outside the alert window, which are reported with low risk.
func (e *Engine) ExpirySchedule(cards []models.Card, now time.Time) []models.ExpiryAlert {
	schedule := make([]models.ExpiryAlert, 0)
	for _, card := range cards {
		if card.ExpiryDate == nil {
			continue
		}
		schedule = append(schedule, e.alertFor(card, DaysUntil(now, *card.ExpiryDate), e.opts.ExpiryThresholdDays))
	}

	sortAlerts(schedule)
	return schedule
}

func (e *Engine) alertFor(card models.Card, days, thresholdDays int) models.ExpiryAlert {
	alert := models.ExpiryAlert{
		CardID:        card.ID,
		CardName:      card.DisplayName(),
		PointsBalance: card.PointsBalance,
		ExpiryDate:    *card.ExpiryDate,
		DaysRemaining: days,
		Status:        models.ExpiryStatusExpiring,
	}

	switch {
	case days < 0:
		alert.RiskLevel = models.RiskLevelHigh
		alert.Status = models.ExpiryStatusExpired
	case days <= e.opts.HighRiskDays:
		alert.RiskLevel = models.RiskLevelHigh
	case days <= thresholdDays:
		alert.RiskLevel = models.RiskLevelMedium
	default:
		alert.RiskLevel = models.RiskLevelLow
		alert.Status = models.ExpiryStatusActive
	}

	alert.Message = expiryMessage(alert)
	return alert
}

func expiryMessage(a models.ExpiryAlert) string {
	points := formatPoints(a.PointsBalance)
	switch {
	case a.DaysRemaining < 0:
		return fmt.Sprintf("%s points on %s expired %s ago", points, a.CardName, pluralDays(-a.DaysRemaining))
	case a.DaysRemaining == 0:
		return fmt.Sprintf("%s points on %s expire today", points, a.CardName)
	default:
		return fmt.Sprintf("%s points on %s expire in %s", points, a.CardName, pluralDays(a.DaysRemaining))
	}
}

func sortAlerts(alerts []models.ExpiryAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysRemaining != alerts[j].DaysRemaining {
			return alerts[i].DaysRemaining < alerts[j].DaysRemaining
		}
		if alerts[i].CardName != alerts[j].CardName {
			return alerts[i].CardName < alerts[j].CardName
		}
		return alerts[i].CardID.String() < alerts[j].CardID.String()
	})
}

// DaysUntil counts calendar days between the UTC dates of now and then.
// Negative when then is in the past.
func DaysUntil(now, then time.Time) int {
	from := truncateToDate(now)
	to := truncateToDate(then)
	return int(to.Sub(from).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}

// formatPoints renders 12345 as "12,345".
func formatPoints(points int64) string {
	s := strconv.FormatInt(points, 10)
	neg := false
	if points < 0 {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
