package assistant

import (
	"strings"
	"testing"

	"serenityspa-backend/models"
)

func testCatalog() []models.Service {
	return []models.Service{
		{Name: "Swedish Massage", Price: 75, DurationLabel: "60 min", Status: models.ServiceActive},
		{Name: "Deep Tissue Massage", Price: 95, DurationLabel: "60 min", Status: models.ServiceActive},
		{Name: "Hot Stone Massage", Price: 110, DurationLabel: "75 min", Status: models.ServiceActive},
		{Name: "Aromatherapy Massage", Price: 85, DurationLabel: "60 min", Status: models.ServiceActive},
		{Name: "Thai Massage", Price: 90, DurationLabel: "90 min", Status: models.ServiceInactive},
	}
}

func TestClassify_ExactServiceName(t *testing.T) {
	catalog := testCatalog()
	for _, svc := range catalog {
		for _, query := range []string{
			svc.Name,
			strings.ToUpper(svc.Name),
			"tell me about the " + strings.ToLower(svc.Name) + " please",
		} {
			reply := Classify(query, catalog)
			if reply.Intent != IntentService {
				t.Fatalf("Classify(%q) intent = %s, want %s", query, reply.Intent, IntentService)
			}
			if reply.Service == nil || reply.Service.Name != svc.Name {
				t.Fatalf("Classify(%q) matched %+v, want %s", query, reply.Service, svc.Name)
			}
		}
	}
}

func TestClassify_SynonymMatch(t *testing.T) {
	catalog := testCatalog()
	cases := map[string]string{
		"do you have anything with essential oil?": "Aromatherapy Massage",
		"i love a nice scent while relaxing":       "Aromatherapy Massage",
		"something with hot stones? hot stone?":    "Hot Stone Massage",
	}
	for query, want := range cases {
		reply := Classify(query, catalog)
		if reply.Intent != IntentService || reply.Service == nil || reply.Service.Name != want {
			t.Errorf("Classify(%q) = %s/%v, want service %s", query, reply.Intent, reply.Service, want)
		}
	}
}

func TestClassify_MusclePainRegardlessOfCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	reversed := make([]models.Service, len(catalog))
	for i := range catalog {
		reversed[len(catalog)-1-i] = catalog[i]
	}

	for _, cat := range [][]models.Service{catalog, reversed, nil} {
		reply := Classify("muscle pain", cat)
		if reply.Intent != IntentRecommendation {
			t.Fatalf("intent = %s, want %s", reply.Intent, IntentRecommendation)
		}
		if reply.ServiceName != "Deep Tissue Massage" {
			t.Fatalf("target = %q, want Deep Tissue Massage", reply.ServiceName)
		}
	}
}

func TestClassify_SymptomBucketPrecedesCategory(t *testing.T) {
	// "pain" and "hours" together must resolve via the symptom bucket
	reply := Classify("my back is in pain, also what are your hours?", testCatalog())
	if reply.Intent != IntentRecommendation {
		t.Fatalf("intent = %s, want %s", reply.Intent, IntentRecommendation)
	}
	if reply.ServiceName != "Deep Tissue Massage" {
		t.Fatalf("target = %q, want Deep Tissue Massage", reply.ServiceName)
	}
}

func TestClassify_BucketTriageOrder(t *testing.T) {
	// First matching bucket wins even when a later bucket also matches
	reply := Classify("stress and tension everywhere", testCatalog())
	if reply.ServiceName != "Deep Tissue Massage" {
		t.Fatalf("target = %q, want the pain/tension bucket to win", reply.ServiceName)
	}
}

func TestClassify_SymptomBuckets(t *testing.T) {
	cases := map[string]string{
		"I have chronic back pain":        "Deep Tissue Massage",
		"feeling really stressed lately":  "Aromatherapy Massage",
		"my circulation is poor":          "Hot Stone Massage",
		"it's my first time at a spa":     "Swedish Massage",
		"something gentle would be great": "Swedish Massage",
	}
	for query, want := range cases {
		reply := Classify(query, testCatalog())
		if reply.Intent != IntentRecommendation || reply.ServiceName != want {
			t.Errorf("Classify(%q) = %s/%q, want recommendation %q", query, reply.Intent, reply.ServiceName, want)
		}
	}
}

func TestClassify_OpenRecommendationAsksToClarify(t *testing.T) {
	reply := Classify("can you suggest a treatment for me?", testCatalog())
	if reply.Intent != IntentClarify {
		t.Fatalf("intent = %s, want %s", reply.Intent, IntentClarify)
	}
	if len(reply.Options) == 0 {
		t.Fatal("expected clarify options")
	}
}

func TestClassify_CannedLabels(t *testing.T) {
	cases := map[string]string{
		"just relax":    "Swedish Massage",
		"warmth & heat": "Hot Stone Massage",
	}
	for query, want := range cases {
		reply := Classify(query, testCatalog())
		if reply.Intent != IntentRecommendation || reply.ServiceName != want {
			t.Errorf("Classify(%q) = %s/%q, want recommendation %q", query, reply.Intent, reply.ServiceName, want)
		}
	}
}

func TestClassify_CategoryIntents(t *testing.T) {
	cases := map[string]Intent{
		"show me the menu":             IntentServiceList,
		"what services do you offer":   IntentServiceList,
		"where are you located":        IntentContact,
		"what is your address":         IntentContact,
		"what are your opening hours":  IntentHours,
		"when are you open":            IntentHours,
		"book a massage":               IntentBooking,
		"how do I make an appointment": IntentBooking,
		"hello":                        IntentGreeting,
		"hi":                           IntentGreeting,
		"thank you so much":            IntentThanks,
	}
	for query, want := range cases {
		reply := Classify(query, testCatalog())
		if reply.Intent != want {
			t.Errorf("Classify(%q) intent = %s, want %s", query, reply.Intent, want)
		}
	}
}

func TestClassify_ServiceListExcludesInactive(t *testing.T) {
	reply := Classify("show me the menu", testCatalog())
	for _, svc := range reply.Services {
		if svc.Status != models.ServiceActive {
			t.Fatalf("inactive service %q leaked into the menu", svc.Name)
		}
	}
	if len(reply.Services) != 4 {
		t.Fatalf("menu has %d services, want 4 active", len(reply.Services))
	}
}

func TestClassify_GreetingNeedsWholeWord(t *testing.T) {
	// "hi" must not fire inside other words
	reply := Classify("something", testCatalog())
	if reply.Intent == IntentGreeting {
		t.Fatal("substring 'hi' inside 'something' misclassified as greeting")
	}
}

func TestClassify_Fallback(t *testing.T) {
	reply := Classify("banana", testCatalog())
	if reply.Intent != IntentOutOfScope {
		t.Fatalf("intent = %s, want %s", reply.Intent, IntentOutOfScope)
	}
	want := []string{"Contact Info", "Massage Menu", "Booking"}
	if len(reply.Options) != len(want) {
		t.Fatalf("options = %v, want %v", reply.Options, want)
	}
	for i := range want {
		if reply.Options[i] != want[i] {
			t.Fatalf("options = %v, want %v", reply.Options, want)
		}
	}
}

func TestClassify_EmptyCatalogDegrades(t *testing.T) {
	if reply := Classify("swedish massage", nil); reply.Intent != IntentOutOfScope {
		t.Fatalf("intent = %s, want fallback when catalog is empty", reply.Intent)
	}
	if reply := Classify("", testCatalog()); reply.Intent != IntentOutOfScope {
		t.Fatalf("intent = %s, want fallback for empty query", reply.Intent)
	}
}

func TestClassify_EndToEndScenario(t *testing.T) {
	catalog := testCatalog()

	reply := Classify("I have chronic back pain", catalog)
	if reply.Intent != IntentRecommendation || reply.ServiceName != "Deep Tissue Massage" {
		t.Fatalf("step 1: got %s/%q", reply.Intent, reply.ServiceName)
	}

	reply = Classify("book a massage", catalog)
	if reply.Intent != IntentBooking {
		t.Fatalf("step 2: got %s, want %s", reply.Intent, IntentBooking)
	}

	reply = Classify("banana", catalog)
	if reply.Intent != IntentOutOfScope {
		t.Fatalf("step 3: got %s, want %s", reply.Intent, IntentOutOfScope)
	}
}
