package marketplace

import "net/url"

// filterKeys is the allow-list of query parameters forwarded to the backend
// as bracketed filters[key] parameters.
var filterKeys = map[string]struct{}{
	"brand":             {},
	"category":          {},
	"color":             {},
	"gender":            {},
	"product_condition": {},
	"silhouette":        {},
	"size":              {},
	"web_groups":        {},
}

// directKeys is the allow-list of query parameters forwarded as-is,
// overriding the request defaults.
var directKeys = map[string]struct{}{
	"num_results_per_page": {},
	"sort_by":              {},
	"sort_order":           {},
}

// reservedKeys are consumed by the route handler itself and never forwarded.
var reservedKeys = map[string]struct{}{
	"query":      {},
	"page":       {},
	"page_limit": {},
}

// PartitionParams splits raw request query parameters into the bracketed
// filter bucket and the direct-parameter bucket. Parameters matching neither
// allow-list are silently dropped.
func PartitionParams(raw url.Values) (filters map[string][]string, direct map[string]string) {
	filters = make(map[string][]string)
	direct = make(map[string]string)

	for key, values := range raw {
		if len(values) == 0 {
			continue
		}
		if _, ok := reservedKeys[key]; ok {
			continue
		}
		if _, ok := filterKeys[key]; ok {
			filters[key] = append(filters[key], values...)
			continue
		}
		if _, ok := directKeys[key]; ok {
			direct[key] = values[0]
		}
	}

	return filters, direct
}
