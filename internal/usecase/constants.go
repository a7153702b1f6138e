package usecase

import "time"

// Categories assigned to transactions created by receivable operations.
const (
	CategoryLending       = "Lending"
	CategoryDebtRepayment = "Debt Repayment"
)

const (
	sourcesCacheKey = "sources:summary"
	sourcesCacheTTL = 30 * time.Second
)
