/*
Package report computes aggregate reports over a snapshot of the asset
collection.

Every function here is pure: no mutation, no persistence, and identical
structured output for identical input. Cost and warranty fields are
free text and parsed leniently: a malformed cost counts as zero, and
records with unparsable warranty data are skipped rather than failing
the report.
*/
package report

import (
	"sort"
	"strings"

	"github.com/afmdw/asset-hub/internal/model"
)

// GroupCount is a (key, count) pair used by the summary report.
type GroupCount struct {
	Key   string
	Count int
}

// Summary is the headline view of the collection.
type Summary struct {
	TotalAssets int
	TotalCost   float64
	ByType      []GroupCount
	ByStatus    []GroupCount
}

// BuildSummary computes the total count, total cost, and per-type /
// per-status counts, each group list sorted by key.
func BuildSummary(assets []model.Asset) Summary {
	s := Summary{TotalAssets: len(assets)}
	for _, a := range assets {
		s.TotalCost += model.ParseCost(a.Cost)
	}
	s.ByType = countBy(assets, func(a model.Asset) string { return a.Type })
	s.ByStatus = countBy(assets, func(a model.Asset) string { return a.Status })
	return s
}

// OwnerGroup is one owner's slice of the collection.
type OwnerGroup struct {
	Owner     string
	Count     int
	TotalCost float64
	// Assets holds the member records in original collection order.
	Assets []model.Asset
}

// BuildOwnerDistribution groups assets by owner name, sorted by owner.
// Assets with a blank owner fall into the "Unassigned" bucket.
func BuildOwnerDistribution(assets []model.Asset) []OwnerGroup {
	byOwner := make(map[string][]model.Asset)
	for _, a := range assets {
		owner := a.Owner
		if strings.TrimSpace(owner) == "" {
			owner = "Unassigned"
		}
		byOwner[owner] = append(byOwner[owner], a)
	}

	names := sortedKeys(byOwner)
	groups := make([]OwnerGroup, 0, len(names))
	for _, name := range names {
		members := byOwner[name]
		group := OwnerGroup{Owner: name, Count: len(members), Assets: members}
		for _, a := range members {
			group.TotalCost += model.ParseCost(a.Cost)
		}
		groups = append(groups, group)
	}
	return groups
}

// StatusGroup is the set of assets in one lifecycle state.
type StatusGroup struct {
	Status string
	Assets []model.Asset
}

// BuildStatusReport groups assets by status, sorted by status name,
// members in original collection order.
func BuildStatusReport(assets []model.Asset) []StatusGroup {
	byStatus := make(map[string][]model.Asset)
	for _, a := range assets {
		byStatus[a.Status] = append(byStatus[a.Status], a)
	}

	statuses := sortedKeys(byStatus)
	groups := make([]StatusGroup, 0, len(statuses))
	for _, status := range statuses {
		groups = append(groups, StatusGroup{Status: status, Assets: byStatus[status]})
	}
	return groups
}

// TypeCost is the summed cost of one asset type.
type TypeCost struct {
	Type string
	Cost float64
}

// CostAnalysis is the financial view of the collection.
type CostAnalysis struct {
	TotalAssets int
	TotalCost   float64
	// AverageCost is zero for an empty collection.
	AverageCost float64
	// ByType is sorted descending by summed cost; ties keep the order
	// the type first appeared in the collection.
	ByType []TypeCost
}

// BuildCostAnalysis computes total, average, and per-type cost sums.
func BuildCostAnalysis(assets []model.Asset) CostAnalysis {
	ca := CostAnalysis{TotalAssets: len(assets)}

	totals := make(map[string]float64)
	var order []string
	for _, a := range assets {
		cost := model.ParseCost(a.Cost)
		ca.TotalCost += cost
		if _, seen := totals[a.Type]; !seen {
			order = append(order, a.Type)
		}
		totals[a.Type] += cost
	}

	if len(assets) > 0 {
		ca.AverageCost = ca.TotalCost / float64(len(assets))
	}

	byType := make([]TypeCost, 0, len(order))
	for _, t := range order {
		byType = append(byType, TypeCost{Type: t, Cost: totals[t]})
	}
	sort.SliceStable(byType, func(i, j int) bool { return byType[i].Cost > byType[j].Cost })
	ca.ByType = byType
	return ca
}

func countBy(assets []model.Asset, key func(model.Asset) string) []GroupCount {
	counts := make(map[string]int)
	for _, a := range assets {
		counts[key(a)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]GroupCount, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, GroupCount{Key: k, Count: counts[k]})
	}
	return groups
}

func sortedKeys(m map[string][]model.Asset) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
