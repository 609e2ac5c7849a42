package catalog

const (
	// AirQuality is the resource name of air quality measurements.
	AirQuality = "air-quality"
	// WaterQuality is the resource name of water quality measurements.
	WaterQuality = "water-quality"

	periodAnnual  = "annual"
	periodMonthly = "monthly"
)

var airQualityResource = Resource{
	Name:           AirQuality,
	Title:          "Air quality",
	Relation:       "air_quality",
	PrimaryKey:     "id",
	TemporalColumn: "measurement_date",
	Projection: []string{
		"id", "measurement_date", "location",
		"pm25", "pm10", "co", "no2", "so2", "o3",
		"temperature", "humidity",
		"notes", "created_at", "updated_at",
	},
	Filters: []string{"location"},
}

var waterQualityResource = Resource{
	Name:           WaterQuality,
	Title:          "Water quality",
	Relation:       "water_quality",
	PrimaryKey:     "id",
	TemporalColumn: "measurement_date",
	Projection: []string{
		"id", "measurement_date", "location", "source",
		"ph", "dissolved_oxygen", "turbidity", "temperature", "conductivity",
		"nitrates", "phosphates", "chlorine",
		"notes", "created_at", "updated_at",
	},
	Filters: []string{"location", "source"},
}

// metrics aggregated into annual and monthly per-station views. The SQL views
// are created by migrations/00003_create_aggregate_views.sql.
var (
	airQualityMetrics   = []string{"pm25", "pm10", "co", "no2", "so2", "o3"}
	waterQualityMetrics = []string{"ph", "dissolved_oxygen", "turbidity", "conductivity", "nitrates", "phosphates", "chlorine"}
)

var (
	annualProjection  = []string{"station", "year", "avg_value", "min_value", "max_value", "samples"}
	monthlyProjection = []string{"station", "year", "month", "avg_value", "min_value", "max_value", "samples"}

	annualOrder  = []string{"station", "year"}
	monthlyOrder = []string{"station", "year", "month"}
)

// Default returns the catalog served by the API.
func Default() *Catalog {
	views := make([]ViewDescriptor, 0, 2*(len(airQualityMetrics)+len(waterQualityMetrics)))
	views = append(views, aggregateViews(AirQuality, airQualityResource.Relation, airQualityMetrics)...)
	views = append(views, aggregateViews(WaterQuality, waterQualityResource.Relation, waterQualityMetrics)...)

	return MustNew([]Resource{airQualityResource, waterQualityResource}, views)
}

// aggregateViews declares the annual and monthly views of every metric of a
// dataset. Route "air-quality/pm25/annual" reads relation
// "air_quality_pm25_annual".
func aggregateViews(dataset, relation string, metrics []string) []ViewDescriptor {
	views := make([]ViewDescriptor, 0, 2*len(metrics))
	for _, metric := range metrics {
		views = append(views,
			ViewDescriptor{
				Route:          ViewRoute(dataset, metric, periodAnnual),
				SourceRelation: relation + "_" + metric + "_" + periodAnnual,
				Projection:     annualProjection,
				OrderBy:        annualOrder,
				RequiresAuth:   true,
			},
			ViewDescriptor{
				Route:          ViewRoute(dataset, metric, periodMonthly),
				SourceRelation: relation + "_" + metric + "_" + periodMonthly,
				Projection:     monthlyProjection,
				OrderBy:        monthlyOrder,
				RequiresAuth:   true,
			},
		)
	}
	return views
}

// ViewRoute joins the URL segments identifying a view.
func ViewRoute(dataset, metric, period string) string {
	return dataset + "/" + metric + "/" + period
}
