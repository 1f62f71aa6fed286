package logic

import (
	"strings"

	"github.com/hy4ri/ideaboard/internal/api"
)

// VisibleIdeas filters ideas by the active color filter, tag filter, and
// search query. The filters AND together; zero values pass everything.
// Tag filtering requires every checked tag to be present on the idea.
// The search matches case-insensitively against the title, the
// description, and tag names resolved through tags.
func VisibleIdeas(ideas []api.Idea, tags []api.Tag, color api.Color, filterTags map[string]bool, query string) []api.Idea {
	wanted := make([]string, 0, len(filterTags))
	for id, on := range filterTags {
		if on {
			wanted = append(wanted, id)
		}
	}

	tagNames := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = strings.ToLower(t.Name)
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]api.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if color != "" && idea.Color != color {
			continue
		}
		if len(wanted) > 0 && !hasAllTags(idea.TagIDs, wanted) {
			continue
		}
		if needle != "" && !matchesSearch(idea, tagNames, needle) {
			continue
		}
		out = append(out, idea)
	}
	return out
}

func hasAllTags(ideaTags []string, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range ideaTags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesSearch(idea api.Idea, tagNames map[string]string, needle string) bool {
	if strings.Contains(strings.ToLower(idea.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(idea.Description), needle) {
		return true
	}
	for _, id := range idea.TagIDs {
		if strings.Contains(tagNames[id], needle) {
			return true
		}
	}
	return false
}

// visibleIdeas applies the state's current filters.
func (h *Handler) visibleIdeas() []api.Idea {
	return VisibleIdeas(h.Ideas, h.Tags, h.FilterColor, h.FilterTags, h.SearchQuery)
}
