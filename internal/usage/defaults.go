package usage

import "time"

// quotaPeriod is the rolling window after which scan quotas reset.
const quotaPeriod = 7 * 24 * time.Hour

func defaultUsage() Usage {
	return Usage{
		Plan:     "Basis",
		Limit:    8,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(quotaPeriod),
	}
}
