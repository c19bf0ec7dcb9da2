package annotator

// DefaultStages lists the built-in stages in execution order.
var DefaultStages = []string{"keywords", "metaphors", "structure", "strategy", "summary", "expansion"}

// RegisterDefaults registers all built-in stages with the registry.
func RegisterDefaults(r *Registry) {
	r.Register("keywords", buildKeywords)
	r.Register("metaphors", func(map[string]any) (Stage, error) { return Metaphors{}, nil })
	r.Register("structure", func(map[string]any) (Stage, error) { return Structure{}, nil })
	r.Register("strategy", func(map[string]any) (Stage, error) { return Strategy{}, nil })
	r.Register("summary", func(map[string]any) (Stage, error) { return Summary{}, nil })
	r.Register("expansion", func(map[string]any) (Stage, error) { return Expansion{}, nil })
}

// buildKeywords creates a keywords stage from generic config.
// Supported config keys:
//   - max_keywords (int): Keywords kept (default: 50)
//   - min_length (int): Shortest token kept (default: 4)
func buildKeywords(cfg map[string]any) (Stage, error) {
	var opts []KeywordsOption

	if cfg != nil {
		if n := getIntFromConfig(cfg, "max_keywords"); n > 0 {
			opts = append(opts, WithMaxKeywords(n))
		}
		if n := getIntFromConfig(cfg, "min_length"); n > 0 {
			opts = append(opts, WithMinLength(n))
		}
	}

	return NewKeywords(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
