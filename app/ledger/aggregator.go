package ledger

import "educore-schools/app/models"

// Status derives the payment state of an obligation from its amounts.
// Stored status is never trusted on reads; it is recomputed here because
// payment application is the only writer and may lag a read.
func Status(amountDue, amountPaid float64) models.FeeStatus {
	switch {
	case amountPaid <= 0:
		return models.FeePending
	case amountPaid < amountDue:
		return models.FeePartial
	default:
		return models.FeePaid
	}
}

// ObligationArrears returns the outstanding balance of one obligation,
// floored at zero so anomalous overpayments never produce negative arrears.
func ObligationArrears(o models.FeeObligation) float64 {
	if o.AmountPaid >= o.AmountDue {
		return 0
	}
	return o.AmountDue - o.AmountPaid
}

// Arrears sums the outstanding balances of one student across the given
// obligations. A student with no obligations owes nothing.
func Arrears(studentID string, obligations []models.FeeObligation) float64 {
	var total float64
	for _, o := range obligations {
		if o.StudentID == studentID {
			total += ObligationArrears(o)
		}
	}
	return total
}

// ClassSummary partitions the students of a class by whether they carry
// arrears and totals the amounts outstanding. TotalArrears sums only the
// students with a positive balance.
func ClassSummary(className string, students []models.Student, obligations []models.FeeObligation) models.ClassFeeSummary {
	summary := models.ClassFeeSummary{ClassName: className}
	for _, s := range students {
		if s.ClassName != className {
			continue
		}
		summary.TotalStudents++
		if owed := Arrears(s.ID, obligations); owed > 0 {
			summary.StudentsWithArrears++
			summary.TotalArrears += owed
		}
	}
	return summary
}

// Stats totals the whole ledger for the admin dashboard, recomputing each
// obligation's status on the way.
func Stats(obligations []models.FeeObligation) models.FeeStats {
	var stats models.FeeStats
	for _, o := range obligations {
		stats.TotalObligations++
		stats.TotalCollected += o.AmountPaid
		stats.TotalOutstanding += ObligationArrears(o)
		switch Status(o.AmountDue, o.AmountPaid) {
		case models.FeePaid:
			stats.PaidCount++
		case models.FeePartial:
			stats.PartialCount++
		default:
			stats.PendingCount++
		}
	}
	return stats
}
