// Package companies is a stand-in for state business registries. Results are
// display data only.
package companies

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"peorisk/internal/apperr"
	"peorisk/internal/domain"
	"peorisk/internal/metrics"
)

var ErrInvalidQuery = apperr.Invalid("company lookup needs a name longer than 2 characters and a state")

var agencies = map[string]string{
	"FL":    "Florida Division of Corporations (Sunbiz)",
	"CA":    "California Secretary of State",
	"NY":    "NY Department of State - Division of Corporations",
	"TX":    "Texas Secretary of State",
	"other": "State Business Registry",
}

var sourceURLs = map[string]string{
	"FL":    "https://search.sunbiz.org/Inquiry/CorporationSearch/ByName",
	"NY":    "https://apps.dos.ny.gov/publicInquiry/",
	"CA":    "https://bizfileonline.sos.ca.gov/search/business",
	"TX":    "https://mycpa.cpa.state.tx.us/coa/",
	"other": "#",
}

type Service struct {
	delay time.Duration
}

// New returns a mock registry that answers after delay.
func New(delay time.Duration) *Service { return &Service{delay: delay} }

// Lookup returns a registry-style record for name in state after the
// simulated delay. It stops early when ctx is cancelled.
func (s *Service) Lookup(ctx context.Context, name, state string) (domain.LookupRecord, error) {
	if !Eligible(name, state) {
		metrics.CompanyLookups.WithLabelValues(state, "invalid").Inc()
		return domain.LookupRecord{}, fmt.Errorf("lookup %q/%q: %w", name, state, ErrInvalidQuery)
	}
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			metrics.CompanyLookups.WithLabelValues(state, "cancelled").Inc()
			return domain.LookupRecord{}, ctx.Err()
		case <-t.C:
		}
	}
	metrics.CompanyLookups.WithLabelValues(state, "ok").Inc()
	return record(name, state), nil
}

// Eligible reports whether a lookup should be attempted for the pair.
func Eligible(name, state string) bool {
	return utf8.RuneCountInString(name) > 2 && state != ""
}

func record(name, state string) domain.LookupRecord {
	agency, ok := agencies[state]
	if !ok {
		agency = agencies["other"]
	}
	if strings.Contains(strings.ToLower(name), "ibm") {
		return domain.LookupRecord{
			Agency:     agency,
			Status:     "Active",
			FilingDate: "1911-06-16",
			Address:    "1 New Orchard Road, Armonk, NY 10504",
			Officers:   []string{"Arvind Krishna (CEO)", "James Kavanaugh (CFO)"},
			DocNumber:  "NY-29169",
			EntityType: "Stock Corporation",
			LastReport: "2024-03-01",
			SourceURL:  sourceURLs["NY"],
		}
	}
	url, ok := sourceURLs[state]
	if !ok {
		url = sourceURLs["other"]
	}
	return domain.LookupRecord{
		Agency:     agency,
		Status:     "Active",
		FilingDate: "2018-03-15",
		Address:    "123 Business Blvd, " + cityLine(state),
		Officers:   []string{"Jane Doe (CEO)", "John Smith (CFO)"},
		DocNumber:  "L18000012345",
		EntityType: "Limited Liability Company",
		LastReport: "2024-04-01",
		SourceURL:  url,
	}
}

func cityLine(state string) string {
	switch state {
	case "FL":
		return "Miami, FL 33101"
	case "NY":
		return "New York, NY 10001"
	}
	return "City, " + state
}

// AutoFillYears sets YearsInBusiness from the record's filing year when the
// profile leaves it empty. Anything else in the record is never copied.
func AutoFillYears(p domain.CompanyProfile, rec domain.LookupRecord, now time.Time) domain.CompanyProfile {
	if p.YearsInBusiness != "" || len(rec.FilingDate) < 4 {
		return p
	}
	year, err := strconv.Atoi(rec.FilingDate[:4])
	if err != nil {
		return p
	}
	p.YearsInBusiness = strconv.Itoa(now.Year() - year)
	return p
}
