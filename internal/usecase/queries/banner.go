package queries

import (
	"fmt"
	"time"

	"event-quote-sim/internal/domain/quoterequest"
)

const BannerStepInterval = 1800 * time.Millisecond

var bannerSteps = []string{
	"Preparing quote…",
	"Checking availability…",
	"Applying venue rates…",
	"Building your package…",
	"Finalizing…",
}

// Banner is the single status line shown above the active requests. Requests
// still in progress take precedence over finished ones; while any are loading
// the line ends with a step that advances every BannerStepInterval.
func Banner(active []*QuoteRequestView, now time.Time) string {
	var loading, ready, failed []*QuoteRequestView
	for _, v := range active {
		switch st := quoterequest.Status(v.Status); {
		case st.IsInProgress():
			loading = append(loading, v)
		case st == quoterequest.StatusReady:
			ready = append(ready, v)
		case st == quoterequest.StatusError:
			failed = append(failed, v)
		}
	}

	switch {
	case len(loading) > 1:
		return fmt.Sprintf("Preparing %d quotes… %s", len(loading), loadingStep(loading, now))
	case len(loading) == 1:
		return fmt.Sprintf("Preparing quote for %s… %s", loading[0].VenueName, loadingStep(loading, now))
	case len(ready) > 1:
		return fmt.Sprintf("%d quotes ready", len(ready))
	case len(ready) == 1:
		return fmt.Sprintf("Quote ready for %s", ready[0].VenueName)
	case len(failed) > 1:
		return "Some quotes couldn't be generated"
	case len(failed) == 1:
		return fmt.Sprintf("Couldn't generate quote for %s", failed[0].VenueName)
	default:
		return ""
	}
}

// loadingStep counts from the oldest loading request.
func loadingStep(loading []*QuoteRequestView, now time.Time) string {
	oldest := loading[0].SubmittedAt
	for _, v := range loading[1:] {
		if v.SubmittedAt.Before(oldest) {
			oldest = v.SubmittedAt
		}
	}
	elapsed := now.Sub(oldest)
	if elapsed < 0 {
		elapsed = 0
	}
	return bannerSteps[int(elapsed/BannerStepInterval)%len(bannerSteps)]
}
