package report

import (
	"reflect"
	"testing"

	"github.com/afmdw/asset-hub/internal/model"
)

func TestBuildSummary(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Type: "Hardware", Status: "Active", Cost: "500"},
		{ID: "A-2", Type: "Software", Status: "Active", Cost: "250.50"},
		{ID: "A-3", Type: "Hardware", Status: "In Repair", Cost: "bad-input"},
	}

	s := BuildSummary(assets)

	if s.TotalAssets != 3 {
		t.Errorf("TotalAssets = %d, want 3", s.TotalAssets)
	}
	if s.TotalCost != 750.50 {
		t.Errorf("TotalCost = %v, want 750.50", s.TotalCost)
	}

	wantTypes := []GroupCount{{"Hardware", 2}, {"Software", 1}}
	if !reflect.DeepEqual(s.ByType, wantTypes) {
		t.Errorf("ByType = %v, want %v", s.ByType, wantTypes)
	}

	wantStatuses := []GroupCount{{"Active", 2}, {"In Repair", 1}}
	if !reflect.DeepEqual(s.ByStatus, wantStatuses) {
		t.Errorf("ByStatus = %v, want %v", s.ByStatus, wantStatuses)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil)
	if s.TotalAssets != 0 || s.TotalCost != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if len(s.ByType) != 0 || len(s.ByStatus) != 0 {
		t.Errorf("empty summary has groups: %+v", s)
	}
}

func TestBuildOwnerDistribution(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Name: "Laptop", Owner: "Bob", Cost: "1000"},
		{ID: "A-2", Name: "Switch", Owner: "", Cost: "400"},
		{ID: "A-3", Name: "Monitor", Owner: "Alice", Cost: "300"},
		{ID: "A-4", Name: "Dock", Owner: "Alice", Cost: "150"},
	}

	groups := BuildOwnerDistribution(assets)

	// Sorted by owner name; blank owner groups under "Unassigned"
	var owners []string
	for _, g := range groups {
		owners = append(owners, g.Owner)
	}
	want := []string{"Alice", "Bob", "Unassigned"}
	if !reflect.DeepEqual(owners, want) {
		t.Fatalf("group order = %v, want %v", owners, want)
	}

	alice := groups[0]
	if alice.Count != 2 || alice.TotalCost != 450 {
		t.Errorf("Alice group = %+v", alice)
	}
	if alice.Assets[0].Name != "Monitor" || alice.Assets[1].Name != "Dock" {
		t.Errorf("Alice members out of original order: %+v", alice.Assets)
	}
}

func TestBuildStatusReport(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Name: "Laptop", Status: "In Repair"},
		{ID: "A-2", Name: "Switch", Status: "Active"},
		{ID: "A-3", Name: "Monitor", Status: "Active"},
	}

	groups := BuildStatusReport(assets)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Status != "Active" || groups[1].Status != "In Repair" {
		t.Errorf("group order: %q, %q", groups[0].Status, groups[1].Status)
	}
	if len(groups[0].Assets) != 2 || groups[0].Assets[0].ID != "A-2" {
		t.Errorf("Active members = %+v", groups[0].Assets)
	}
}

func TestBuildCostAnalysis(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Type: "Hardware", Cost: "500"},
		{ID: "A-2", Type: "Software", Cost: "1500"},
		{ID: "A-3", Type: "Network", Cost: "1500"},
	}

	ca := BuildCostAnalysis(assets)

	if ca.TotalCost != 3500 {
		t.Errorf("TotalCost = %v, want 3500", ca.TotalCost)
	}
	if want := 3500.0 / 3; ca.AverageCost != want {
		t.Errorf("AverageCost = %v, want %v", ca.AverageCost, want)
	}

	// Descending by summed cost; Software and Network tie at 1500 and
	// keep first-occurrence order
	var types []string
	for _, tc := range ca.ByType {
		types = append(types, tc.Type)
	}
	want := []string{"Software", "Network", "Hardware"}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("ByType order = %v, want %v", types, want)
	}
}

func TestBuildCostAnalysisEmpty(t *testing.T) {
	ca := BuildCostAnalysis(nil)
	if ca.AverageCost != 0 {
		t.Errorf("AverageCost on empty collection = %v, want 0", ca.AverageCost)
	}
	if ca.TotalCost != 0 || ca.TotalAssets != 0 {
		t.Errorf("empty analysis = %+v", ca)
	}
}

func TestReportsAreDeterministic(t *testing.T) {
	assets := []model.Asset{
		{ID: "A-1", Type: "Hardware", Status: "Active", Owner: "Bob", Cost: "500"},
		{ID: "A-2", Type: "Software", Status: "On Hold", Owner: "", Cost: "750"},
		{ID: "A-3", Type: "Hardware", Status: "Active", Owner: "Alice", Cost: "250"},
	}

	if !reflect.DeepEqual(BuildSummary(assets), BuildSummary(assets)) {
		t.Error("BuildSummary is not deterministic")
	}
	if !reflect.DeepEqual(BuildOwnerDistribution(assets), BuildOwnerDistribution(assets)) {
		t.Error("BuildOwnerDistribution is not deterministic")
	}
	if !reflect.DeepEqual(BuildCostAnalysis(assets), BuildCostAnalysis(assets)) {
		t.Error("BuildCostAnalysis is not deterministic")
	}
}
