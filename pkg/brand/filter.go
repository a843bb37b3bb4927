package brand

import (
	"sort"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

// channelsIntersect is the ANY-match rule: a brand passes when its channel
// set shares at least one element with the requested set.
func channelsIntersect(have entities.StringList, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// FilterByChannels keeps brands whose channel sets intersect the requested
// physical and online channel sets. Empty request sets impose no constraint.
func FilterByChannels(brands []entities.MilkBrand, physical, online []string) []entities.MilkBrand {
	if len(physical) == 0 && len(online) == 0 {
		return brands
	}

	filtered := make([]entities.MilkBrand, 0, len(brands))
	for _, b := range brands {
		if len(physical) > 0 && !channelsIntersect(b.PhysicalChannels, physical) {
			continue
		}
		if len(online) > 0 && !channelsIntersect(b.OnlineChannels, online) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// CollectChannelOptions returns the deduplicated, sorted channel values
// observed across the given brands, for populating filter UI choices.
func CollectChannelOptions(brands []entities.MilkBrand) (physical []string, online []string) {
	physicalSet := make(map[string]struct{})
	onlineSet := make(map[string]struct{})

	for _, b := range brands {
		for _, c := range b.PhysicalChannels {
			physicalSet[c] = struct{}{}
		}
		for _, c := range b.OnlineChannels {
			onlineSet[c] = struct{}{}
		}
	}

	physical = make([]string, 0, len(physicalSet))
	for c := range physicalSet {
		physical = append(physical, c)
	}
	online = make([]string, 0, len(onlineSet))
	for c := range onlineSet {
		online = append(online, c)
	}
	sort.Strings(physical)
	sort.Strings(online)
	return physical, online
}
