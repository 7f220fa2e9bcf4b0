package espn

import "net/url"

// Host selects which of the two upstream bases an endpoint lives on.
type Host int

const (
	// HostCDN is the cdn.espn.com style host serving play-by-play, box
	// scores, schedules and standings as xhr page payloads.
	HostCDN Host = iota
	// HostAPI is the site.api.espn.com JSON API serving summaries,
	// scoreboards and team resources.
	HostAPI
)

// Endpoint is one row of a sport's registry: a logical operation bound to a
// host, a path and the query parameters that never vary per call.
type Endpoint struct {
	Operation string
	Host      Host
	Path      string
	Fixed     url.Values
}

// query merges the endpoint's fixed parameters with the per-call ones.
func (e Endpoint) query(params url.Values) url.Values {
	merged := url.Values{}
	for k, vs := range e.Fixed {
		for _, v := range vs {
			merged.Add(k, v)
		}
	}
	for k, vs := range params {
		for _, v := range vs {
			merged.Add(k, v)
		}
	}
	return merged
}
