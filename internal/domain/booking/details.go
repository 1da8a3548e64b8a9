package booking

import (
	"sort"
	"strings"
	"unicode/utf8"

	"estate-booking/internal/pkg/errs"
)

var ErrDetailTooLong = errs.New("booking detail value is too long")

// Fields a client may attach to a booking. Anything else in the request is dropped.
const (
	DetailNotes                  = "notes"
	DetailPaymentPlan            = "paymentPlan"
	DetailContactPhone           = "contactPhone"
	DetailPreferredContactMethod = "preferredContactMethod"
	DetailVisitDate              = "visitDate"
	DetailReferralCode           = "referralCode"
)

var detailLimits = map[string]int{
	DetailNotes:                  2000,
	DetailPaymentPlan:            100,
	DetailContactPhone:           32,
	DetailPreferredContactMethod: 32,
	DetailVisitDate:              64,
	DetailReferralCode:           64,
}

type Details map[string]string

// NewDetails keeps the allow-listed string fields of raw. Keys that are not
// allowed, or whose value is not a string, are returned in ignored (sorted).
func NewDetails(raw map[string]any) (details Details, ignored []string, err error) {
	details = Details{}
	for k, v := range raw {
		limit, ok := detailLimits[k]
		if !ok {
			ignored = append(ignored, k)
			continue
		}
		s, ok := v.(string)
		if !ok {
			ignored = append(ignored, k)
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if utf8.RuneCountInString(s) > limit {
			return nil, nil, errs.Wrapf(ErrDetailTooLong, "field %s exceeds %d characters", k, limit)
		}
		details[k] = s
	}
	sort.Strings(ignored)
	return details, ignored, nil
}

func (d Details) Clone() Details {
	out := make(Details, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
