package weather

import "strings"

// ForecastEntry pairs a combined date-time stamp ("2006-01-02 15:04:05")
// with its formatted sample, before date bucketing.
type ForecastEntry struct {
	Timestamp string
	Sample    ForecastSample
}

// BucketForecast groups chronologically-ordered entries into per-day buckets
// and truncates to the first days distinct dates. No sorting happens: day
// order is first-seen order and sample order within a day is input order,
// both trusted from the source.
func BucketForecast(entries []ForecastEntry, days int) []ForecastDay {
	var buckets []ForecastDay
	index := make(map[string]int)

	for _, e := range entries {
		date, timeOfDay, _ := strings.Cut(e.Timestamp, " ")

		sample := e.Sample
		sample.Time = timeOfDay

		i, ok := index[date]
		if !ok {
			buckets = append(buckets, ForecastDay{Date: date})
			i = len(buckets) - 1
			index[date] = i
		}
		buckets[i].Samples = append(buckets[i].Samples, sample)
	}

	if days > 0 && len(buckets) > days {
		buckets = buckets[:days]
	}
	return buckets
}
