package extract

import (
	"strings"
	"testing"
)

func TestFromText_AnchoredMilestones(t *testing.T) {
	text := "Milestone 1: Build API. Task: write endpoints. 10 hours. $500. " +
		"Milestone 2: Deploy. Task: configure CI. 5 hours. $200."

	got := FromText(text)
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}

	first, second := got[0], got[1]
	if first.ID != "m-0" || second.ID != "m-1" {
		t.Errorf("IDs = %q/%q, want m-0/m-1", first.ID, second.ID)
	}
	if first.MilestoneLabel != "M1" || second.MilestoneLabel != "M2" {
		t.Errorf("labels = %q/%q, want M1/M2", first.MilestoneLabel, second.MilestoneLabel)
	}
	if first.Title != "Build API" || second.Title != "Deploy" {
		t.Errorf("titles = %q/%q, want Build API/Deploy", first.Title, second.Title)
	}
	if first.EstimatedHours != 10 || second.EstimatedHours != 5 {
		t.Errorf("hours = %v/%v, want 10/5", first.EstimatedHours, second.EstimatedHours)
	}
	if first.PriceEstimate != 500 || second.PriceEstimate != 200 {
		t.Errorf("prices = %v/%v, want 500/200", first.PriceEstimate, second.PriceEstimate)
	}
}

func TestFromText_AnchoredAlphanumericIDs(t *testing.T) {
	got := FromText("Phase A: design work for the portal. Phase B: build work for the portal.")
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}
	if got[0].MilestoneLabel != "MA" || got[1].MilestoneLabel != "MB" {
		t.Errorf("labels = %q/%q, want MA/MB", got[0].MilestoneLabel, got[1].MilestoneLabel)
	}
}

func TestFromText_TableLines(t *testing.T) {
	text := "ID  Title  Hours  Price\n" +
		"P1  Design  10 hours  $500\n" +
		"P2  Build  20 hours  $1,200\n"

	got := FromText(text)
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}
	if got[0].MilestoneLabel != "P1" || got[0].Title != "Design" {
		t.Errorf("first = %q/%q, want P1/Design", got[0].MilestoneLabel, got[0].Title)
	}
	if got[0].EstimatedHours != 10 || got[0].PriceEstimate != 500 {
		t.Errorf("first hours/price = %v/%v, want 10/500", got[0].EstimatedHours, got[0].PriceEstimate)
	}
	if got[1].EstimatedHours != 20 || got[1].PriceEstimate != 1200 {
		t.Errorf("second hours/price = %v/%v, want 20/1200", got[1].EstimatedHours, got[1].PriceEstimate)
	}
	if got[0].ID != "m-0" || got[1].ID != "m-1" {
		t.Errorf("IDs = %q/%q, want m-0/m-1", got[0].ID, got[1].ID)
	}
}

func TestFromText_NumberedSections(t *testing.T) {
	got := FromText("1. Discovery and planning covering requirements gathering. " +
		"2. Delivery and rollout covering deployment tasks.")
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}
	if got[0].MilestoneLabel != "M1" || got[1].MilestoneLabel != "M2" {
		t.Errorf("labels = %q/%q, want M1/M2", got[0].MilestoneLabel, got[1].MilestoneLabel)
	}
	if !strings.HasPrefix(got[0].Title, "Discovery") {
		t.Errorf("first title = %q, want Discovery...", got[0].Title)
	}
}

func TestFromText_WholeDocumentFallback(t *testing.T) {
	got := FromText("General overview of proposed consulting engagement covering discovery and delivery.")
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1", len(got))
	}
	if got[0].MilestoneLabel != "M1" {
		t.Errorf("label = %q, want M1", got[0].MilestoneLabel)
	}
	if got[0].Title != "General overview of proposed consulting engagement covering discovery and delivery." {
		t.Errorf("unexpected title %q", got[0].Title)
	}
}

func TestFromText_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", " \n\t \n "} {
		if got := FromText(in); got != nil {
			t.Errorf("FromText(%q) = %v, want nil", in, got)
		}
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("  Line one \t\n\n  Line   two  \r\n")
	if doc.Normalized != "Line one Line two" {
		t.Errorf("Normalized = %q", doc.Normalized)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(doc.Lines))
	}
	if doc.Lines[1] != "  Line   two" {
		t.Errorf("Lines[1] = %q, want indentation and inner spacing kept", doc.Lines[1])
	}
}

// A single numbered hit is not enough evidence for the numbered strategy;
// the document falls through to the whole-document segment.
func TestFromText_SingleNumberedHitFallsThrough(t *testing.T) {
	got := FromText("1. Discovery and planning covering requirements gathering for the portal build.")
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1", len(got))
	}
	if got[0].MilestoneLabel != "M1" {
		t.Errorf("label = %q, want M1 (whole-document)", got[0].MilestoneLabel)
	}
}
