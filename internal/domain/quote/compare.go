package quote

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrTooFewQuotes        = errors.New("at least 2 quotes are needed to compare")
	ErrTooManyQuotes       = errors.New("at most 6 quotes can be compared")
	ErrInvalidCancellation = errors.New("invalid cancellation policy")
	ErrDuplicateQuoteID    = errors.New("duplicate quote id")
)

const (
	MinCompared = 2
	MaxCompared = 6
)

type Cancellation string

const (
	CancellationFlexible Cancellation = "Flexible"
	CancellationStandard Cancellation = "Standard"
	CancellationStrict   Cancellation = "Strict"
)

func (c Cancellation) IsValid() bool {
	switch c {
	case CancellationFlexible, CancellationStandard, CancellationStrict:
		return true
	default:
		return false
	}
}

// ComparableQuote is one column of the compare view. TotalPrice and PerPerson
// are display strings; the numeric fields drive ordering.
type ComparableQuote struct {
	ID               string
	VenueName        string
	Attendees        int
	Currency         string
	TotalPrice       string
	PerPerson        string
	NumericTotal     int64
	NumericPerPerson int64
	NotIncluded      []string
	Cancellation     Cancellation
}

func (q ComparableQuote) excludes(service string) bool {
	return slices.Contains(q.NotIncluded, service)
}

// ValidateSelection checks a selection the compare view can render.
func ValidateSelection(quotes []ComparableQuote) error {
	if len(quotes) < MinCompared {
		return ErrTooFewQuotes
	}
	if len(quotes) > MaxCompared {
		return ErrTooManyQuotes
	}
	seen := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		if !q.Cancellation.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidCancellation, q.Cancellation)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateQuoteID, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

func byTotal(quotes []ComparableQuote) []ComparableQuote {
	sorted := slices.Clone(quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NumericTotal < sorted[j].NumericTotal
	})
	return sorted
}

func find(quotes []ComparableQuote, match func(ComparableQuote) bool) (ComparableQuote, bool) {
	for _, q := range quotes {
		if match(q) {
			return q, true
		}
	}
	return ComparableQuote{}, false
}

// Summary writes the assistant's paragraph about a selection. Fewer than two
// quotes produce an empty summary.
func Summary(quotes []ComparableQuote) string {
	if len(quotes) < MinCompared {
		return ""
	}
	cheapest := byTotal(quotes)[0]
	allInclusive, hasAllInclusive := find(quotes, func(q ComparableQuote) bool { return len(q.NotIncluded) == 0 })
	flexible, hasFlexible := find(quotes, func(q ComparableQuote) bool { return q.Cancellation == CancellationFlexible })

	minPP, maxPP := quotes[0].NumericPerPerson, quotes[0].NumericPerPerson
	for _, q := range quotes[1:] {
		minPP = min(minPP, q.NumericPerPerson)
		maxPP = max(maxPP, q.NumericPerPerson)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "For your %d-person event, ", quotes[0].Attendees)
	if hasAllInclusive && allInclusive.ID != cheapest.ID {
		fmt.Fprintf(&b, "%s offers the most complete package (all-inclusive), ", allInclusive.VenueName)
		fmt.Fprintf(&b, "while %s comes in %d%% cheaper at %s %s",
			cheapest.VenueName, percentCheaper(allInclusive.NumericTotal, cheapest.NumericTotal), cheapest.Currency, cheapest.TotalPrice)
		if len(cheapest.NotIncluded) > 0 {
			missing := cheapest.NotIncluded[:min(2, len(cheapest.NotIncluded))]
			fmt.Fprintf(&b, " but doesn't include %s", strings.ToLower(strings.Join(missing, " or ")))
		}
		b.WriteString(". ")
	} else {
		fmt.Fprintf(&b, "%s is the most affordable at %s %s/person. ", cheapest.VenueName, cheapest.Currency, cheapest.PerPerson)
	}
	fmt.Fprintf(&b, "Per-person prices range from %s %d to %s %d. ", cheapest.Currency, minPP, cheapest.Currency, maxPP)
	if hasFlexible && flexible.ID != cheapest.ID {
		fmt.Fprintf(&b, "%s has the most flexible cancellation terms.", flexible.VenueName)
	}
	return strings.TrimSpace(b.String())
}

// SuggestedQuestions returns up to three follow-up prompts grounded in the
// selection's names and prices.
func SuggestedQuestions(quotes []ComparableQuote) []string {
	if len(quotes) < MinCompared {
		return []string{}
	}
	sorted := byTotal(quotes)
	cheapest, priciest := sorted[0], sorted[len(sorted)-1]

	questions := []string{
		fmt.Sprintf("Why is %s %s %s cheaper than %s?",
			cheapest.VenueName, cheapest.Currency, FormatGrouped(priciest.NumericTotal-cheapest.NumericTotal), priciest.VenueName),
	}
	if q, ok := find(quotes, func(q ComparableQuote) bool { return q.excludes("Dinner") }); ok {
		questions = append(questions, fmt.Sprintf("What would it cost to add dinner to %s?", q.VenueName))
	}
	if q, ok := find(quotes, func(q ComparableQuote) bool { return q.Cancellation == CancellationStrict }); ok {
		questions = append(questions, fmt.Sprintf("What are the cancellation terms for %s?", q.VenueName))
	}
	questions = append(questions, "Which option is safest for availability?")
	return questions[:min(3, len(questions))]
}

func percentCheaper(reference, cheaper int64) int {
	if reference == 0 {
		return 0
	}
	ratio := float64(reference-cheaper) / float64(reference) * 100
	return int(math.Floor(ratio + 0.5))
}

// FormatGrouped renders n with a space between thousands groups ("16 806").
func FormatGrouped(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// CurrencySymbol maps an ISO code to the symbol shown on quote cards.
func CurrencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "USD":
		return "$"
	default:
		return code
	}
}
