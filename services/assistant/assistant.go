// Package assistant implements the rule-based chat concierge. Classification
// is a pure function over the visitor's text and a catalog snapshot, so rule
// precedence stays testable.
package assistant

import (
	"fmt"
	"strings"

	"serenityspa-backend/models"
)

type Intent string

const (
	IntentService        Intent = "service"
	IntentRecommendation Intent = "recommendation"
	IntentClarify        Intent = "clarify"
	IntentServiceList    Intent = "service_list"
	IntentContact        Intent = "contact"
	IntentHours          Intent = "hours"
	IntentBooking        Intent = "booking"
	IntentGreeting       Intent = "greeting"
	IntentThanks         Intent = "thanks"
	IntentOutOfScope     Intent = "out_of_scope"
)

// Reply is the assistant's typed response to one user message.
type Reply struct {
	Intent      Intent           `json:"intent"`
	Text        string           `json:"text"`
	Service     *models.Service  `json:"service,omitempty"`     // IntentService
	ServiceName string           `json:"serviceName,omitempty"` // IntentRecommendation target
	Reason      string           `json:"reason,omitempty"`
	Services    []models.Service `json:"services,omitempty"` // IntentServiceList
	Options     []string         `json:"options,omitempty"`
}

// Hand-coded synonym substrings per known offering, checked together with the
// catalog names in rule 1.
var serviceSynonyms = map[string][]string{
	"Aromatherapy Massage": {"aroma", "scent", "essential oil"},
	"Deep Tissue Massage":  {"deep tissue"},
	"Hot Stone Massage":    {"hot stone", "stone massage"},
	"Swedish Massage":      {"swedish", "classic massage"},
	"Thai Massage":         {"thai"},
	"Reflexology":          {"foot massage", "reflexology"},
}

type symptomBucket struct {
	keywords []string
	service  string
	reason   string
}

// First bucket whose keywords intersect the query wins. The triage order is
// deliberate: pain complaints take priority over relaxation asks.
var symptomBuckets = []symptomBucket{
	{
		keywords: []string{"pain", "tension", "sore", "ache", "aching", "knot", "tight"},
		service:  "Deep Tissue Massage",
		reason:   "Deep tissue work targets chronic muscle pain and built-up tension.",
	},
	{
		keywords: []string{"stress", "stressed", "anxiety", "anxious", "overwhelmed", "unwind"},
		service:  "Aromatherapy Massage",
		reason:   "Aromatherapy with essential oils is our favourite for melting stress away.",
	},
	{
		keywords: []string{"warmth", "warm", "heat", "circulation", "cold", "chilly"},
		service:  "Hot Stone Massage",
		reason:   "Heated basalt stones boost circulation and wrap you in soothing warmth.",
	},
	{
		keywords: []string{"first time", "first-time", "gentle", "beginner", "never had"},
		service:  "Swedish Massage",
		reason:   "A gentle Swedish massage is the perfect introduction for first-timers.",
	},
}

// Quick-reply button labels map straight to a recommendation.
var cannedLabels = map[string]string{
	"muscle pain":   "Deep Tissue Massage",
	"stress relief": "Aromatherapy Massage",
	"just relax":    "Swedish Massage",
	"warmth & heat": "Hot Stone Massage",
}

var clarifyOptions = []string{"Muscle Pain", "Stress Relief", "Just Relax", "Warmth & Heat"}

var fallbackOptions = []string{"Contact Info", "Massage Menu", "Booking"}

// Classify maps free text to a typed reply using an ordered rule list; the
// first matching rule wins. It never fails: an empty catalog simply skips the
// name-match rule and degrades to the fallback.
func Classify(query string, catalog []models.Service) Reply {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return outOfScope()
	}

	// 1. Exact or synonym service-name match against the catalog
	if svc := matchService(q, catalog); svc != nil {
		return Reply{
			Intent:  IntentService,
			Service: svc,
			Text: fmt.Sprintf("%s (%s, $%.0f): %s Would you like to book it?",
				svc.Name, svc.DurationLabel, svc.Price, svc.CardDescription),
		}
	}

	// 2. Symptom keyword buckets, first match wins
	for _, bucket := range symptomBuckets {
		for _, kw := range bucket.keywords {
			if matchKeyword(q, kw) {
				return Reply{
					Intent:      IntentRecommendation,
					ServiceName: bucket.service,
					Reason:      bucket.reason,
					Text:        fmt.Sprintf("I'd recommend our %s. %s", bucket.service, bucket.reason),
				}
			}
		}
	}

	// 3. Open recommendation request
	if containsAny(q, "suggest", "recommend", "what should", "which massage", "help me choose", "not sure") {
		return Reply{
			Intent:  IntentClarify,
			Options: clarifyOptions,
			Text:    "Happy to help you pick! What are you looking for today?",
		}
	}

	// 4. Literal quick-reply labels
	if target, ok := cannedLabels[q]; ok {
		return Reply{
			Intent:      IntentRecommendation,
			ServiceName: target,
			Text:        fmt.Sprintf("For that I'd go with our %s.", target),
		}
	}

	// 5. Category intents
	switch {
	case containsAny(q, "menu", "price list", "what do you offer", "all massages") || matchKeyword(q, "services") || matchKeyword(q, "options"):
		return Reply{
			Intent:   IntentServiceList,
			Services: activeOnly(catalog),
			Text:     "Here is our full massage menu:",
		}
	case containsAny(q, "contact", "location", "address", "where are you", "phone number", "reach you", "directions"):
		return Reply{
			Intent: IntentContact,
			Text:   "You can find us at 12 Lotus Lane, Riverside. Call us on +1 555 010 7788 or email hello@serenityspa.example.",
		}
	case containsAny(q, "hours", "opening", "closing", "timing", "when are you") || matchKeyword(q, "open") || matchKeyword(q, "close"):
		return Reply{
			Intent: IntentHours,
			Text:   "We are open Monday to Saturday 9:00–20:00 and Sunday 10:00–18:00.",
		}
	case containsAny(q, "booking", "appointment", "reserve", "schedule") || matchKeyword(q, "book"):
		return Reply{
			Intent: IntentBooking,
			Text:   "You can book right here on the site: pick a service, a date and a time and we'll confirm with a therapist shortly.",
		}
	case containsAny(q, "hello", "good morning", "good afternoon", "good evening") || matchKeyword(q, "hi") || matchKeyword(q, "hey"):
		return Reply{
			Intent: IntentGreeting,
			Text:   "Hello! Welcome to Serenity Spa. How can I help you today?",
		}
	case containsAny(q, "thank", "thanks", "appreciate"):
		return Reply{
			Intent: IntentThanks,
			Text:   "You're very welcome! Let me know if there's anything else.",
		}
	}

	// 6. Fallback
	return outOfScope()
}

func outOfScope() Reply {
	return Reply{
		Intent:  IntentOutOfScope,
		Options: fallbackOptions,
		Text:    "I'm not sure I can help with that, but here's what I can do:",
	}
}

func matchService(q string, catalog []models.Service) *models.Service {
	for i := range catalog {
		if strings.Contains(q, strings.ToLower(catalog[i].Name)) {
			return &catalog[i]
		}
	}
	for name, synonyms := range serviceSynonyms {
		for _, syn := range synonyms {
			if !strings.Contains(q, syn) {
				continue
			}
			for i := range catalog {
				if strings.EqualFold(catalog[i].Name, name) {
					return &catalog[i]
				}
			}
		}
	}
	return nil
}

func activeOnly(catalog []models.Service) []models.Service {
	out := make([]models.Service, 0, len(catalog))
	for _, svc := range catalog {
		if svc.Status == models.ServiceActive {
			out = append(out, svc)
		}
	}
	return out
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// matchKeyword does a whole-word comparison for single-word keywords so that
// e.g. "hi" does not fire inside "something". Phrases fall back to substring
// matching.
func matchKeyword(q, kw string) bool {
	if strings.Contains(kw, " ") || strings.Contains(kw, "-") {
		return strings.Contains(q, kw)
	}
	for _, w := range strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if w == kw {
			return true
		}
	}
	return false
}
