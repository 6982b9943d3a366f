package tool

// Select returns the tools named by keywords, either by key or by tag, in
// configured order. With no keywords every enabled tool is selected. A
// disabled tool is only selected when its key is named explicitly.
func Select(tools []*Tool, keywords []string) []*Tool {
	var result []*Tool

	if len(keywords) == 0 {
		for _, t := range tools {
			if !t.Disabled() {
				result = append(result, t)
			}
		}
		return result
	}

	for _, t := range tools {
		for _, keyword := range keywords {
			if keyword == t.Key() || (!t.Disabled() && t.HasTag(keyword)) {
				result = append(result, t)
				break
			}
		}
	}

	return result
}

// Unknown returns the keywords that match neither a tool key nor a tag.
func Unknown(tools []*Tool, keywords []string) []string {
	var result []string

	for _, keyword := range keywords {
		known := false
		for _, t := range tools {
			if keyword == t.Key() || t.HasTag(keyword) {
				known = true
				break
			}
		}
		if !known {
			result = append(result, keyword)
		}
	}

	return result
}
