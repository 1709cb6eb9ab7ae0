package perplexity

// JSON schemas sent with schema-constrained requests. Each mirrors the
// response struct it decodes into.

func objectSchema(properties map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func stringType() map[string]any  { return map[string]any{"type": "string"} }
func integerType() map[string]any { return map[string]any{"type": "integer"} }

var soundsSchema = objectSchema(map[string]any{
	"sounds": arrayOf(objectSchema(map[string]any{
		"title":              stringType(),
		"artist":             stringType(),
		"duration":           integerType(),
		"genre":              stringType(),
		"mood":               stringType(),
		"viral_potential":    stringType(),
		"usage_count":        integerType(),
		"trend_score":        integerType(),
		"hashtags":           arrayOf(stringType()),
		"best_content_types": arrayOf(stringType()),
		"peak_usage_time":    stringType(),
	}, []string{
		"title", "artist", "duration", "genre", "mood", "viral_potential",
		"usage_count", "trend_score", "hashtags", "best_content_types", "peak_usage_time",
	})),
}, []string{"sounds"})

var brandsSchema = objectSchema(map[string]any{
	"brands": arrayOf(objectSchema(map[string]any{
		"name":                stringType(),
		"fit_reason":          stringType(),
		"collaboration_types": arrayOf(stringType()),
		"value_range":         stringType(),
		"approach":            stringType(),
	}, []string{"name", "fit_reason", "collaboration_types", "value_range", "approach"})),
}, []string{"brands"})

var competitorSchema = objectSchema(map[string]any{
	"competitors": arrayOf(objectSchema(map[string]any{
		"name":           stringType(),
		"platform":       stringType(),
		"followers":      stringType(),
		"content_style":  stringType(),
		"success_factor": stringType(),
	}, []string{"name", "platform", "followers", "content_style", "success_factor"})),
}, []string{"competitors"})

var trendsSchema = objectSchema(map[string]any{
	"trends": arrayOf(objectSchema(map[string]any{
		"trend":            stringType(),
		"description":      stringType(),
		"regions":          arrayOf(stringType()),
		"engagement_score": integerType(),
	}, []string{"trend", "description", "regions", "engagement_score"})),
}, []string{"trends"})
