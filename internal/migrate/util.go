package migrate

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func tagsOr(tags []string, def ...string) []string {
	if len(tags) > 0 {
		return tags
	}
	return def
}
