package sounds

import (
	"log/slog"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// MomentumConfig holds momentum-grouping parameters.
type MomentumConfig struct {
	NumClusters    int // Number of groups to create (default: 3)
	MinClusterSize int // Smaller groups become outliers
}

// DefaultMomentumConfig returns the recommended default configuration.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{
		NumClusters:    3,
		MinClusterSize: 2,
	}
}

// MomentumGroup is a cluster of sounds with similar trend trajectory.
type MomentumGroup struct {
	Label         string
	Sounds        []Sound
	AvgTrendScore float64
	AvgUsage      float64
}

// soundObservation wraps a Sound to implement clusters.Observation.
type soundObservation struct {
	sound  *Sound
	coords clusters.Coordinates
}

func (o soundObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o soundObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// GroupByMomentum clusters sounds by (trend score, usage) with k-means. Both
// axes are normalized to [0,1]; usage is scaled against the catalog maximum.
// Groups smaller than MinClusterSize are returned as outliers.
func GroupByMomentum(sounds []Sound, cfg MomentumConfig) ([]MomentumGroup, []Sound) {
	if len(sounds) == 0 {
		return nil, nil
	}
	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultMomentumConfig().NumClusters
	}

	if len(sounds) < cfg.NumClusters {
		outliers := make([]Sound, len(sounds))
		copy(outliers, sounds)
		return nil, outliers
	}

	maxUsage := 0
	for _, s := range sounds {
		if s.UsageCount > maxUsage {
			maxUsage = s.UsageCount
		}
	}
	if maxUsage == 0 {
		maxUsage = 1
	}

	var obs clusters.Observations
	for i := range sounds {
		obs = append(obs, soundObservation{
			sound: &sounds[i],
			coords: clusters.Coordinates{
				float64(sounds[i].TrendScore) / 100,
				float64(sounds[i].UsageCount) / float64(maxUsage),
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		slog.Warn("momentum clustering failed", "error", err)
		outliers := make([]Sound, len(sounds))
		copy(outliers, sounds)
		return nil, outliers
	}

	var groups []MomentumGroup
	var outliers []Sound

	for _, cluster := range result {
		var members []Sound
		for _, o := range cluster.Observations {
			if so, ok := o.(soundObservation); ok {
				members = append(members, *so.sound)
			}
		}

		if len(members) < cfg.MinClusterSize {
			outliers = append(outliers, members...)
			continue
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].TrendScore > members[j].TrendScore
		})

		var scoreSum, usageSum float64
		for _, m := range members {
			scoreSum += float64(m.TrendScore)
			usageSum += float64(m.UsageCount)
		}

		groups = append(groups, MomentumGroup{
			Label:         momentumLabel(cluster.Center[0], cluster.Center[1]),
			Sounds:        members,
			AvgTrendScore: scoreSum / float64(len(members)),
			AvgUsage:      usageSum / float64(len(members)),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].AvgTrendScore > groups[j].AvgTrendScore
	})
	return groups, outliers
}

// momentumLabel names a cluster by its centroid position: high score with
// high usage is already peaking, high score with low usage is breaking out.
func momentumLabel(score, usage float64) string {
	switch {
	case score >= 0.75 && usage >= 0.5:
		return "Peaking"
	case score >= 0.75:
		return "Breaking Out"
	case usage >= 0.5:
		return "Cooling Off"
	default:
		return "Background"
	}
}
