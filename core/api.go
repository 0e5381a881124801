package core

import "strings"

// Api holds the resolved endpoint identities for a deployment, built once
// from the configured dx api base path.
type Api struct {
	Temporal      string
	Entities      string
	ConsumerAudit string
	ProviderAudit string
	PostEntities  string
	PostTemporal  string
	AsyncSearch   string
	AsyncStatus   string

	openEndpoints []string
}

func NewApi(basePath string) Api {
	basePath = strings.TrimSuffix(basePath, "/")
	return Api{
		Temporal:      basePath + "/temporal/entities",
		Entities:      basePath + "/entities",
		ConsumerAudit: basePath + "/consumer/audit",
		ProviderAudit: basePath + "/provider/audit",
		PostEntities:  basePath + "/entityOperations/query",
		PostTemporal:  basePath + "/temporal/entityOperations/query",
		AsyncSearch:   basePath + "/async/search",
		AsyncStatus:   basePath + "/async/status",

		openEndpoints: []string{
			"/temporal/entities",
			"/entities",
			"/consumer/audit",
			"/entityOperations/query",
			"/async/search",
			"/async/status",
		},
	}
}

// IsOpenEndpoint reports whether the endpoint is in the configured set of
// endpoints an OPEN resource may be consumed on.
func (a Api) IsOpenEndpoint(endpoint string) bool {
	for _, item := range a.openEndpoints {
		if strings.Contains(endpoint, item) {
			return true
		}
	}
	return false
}

// NormalizePath maps a raw request path onto its endpoint identity,
// stripping path-parameter tails. Returns "" for unknown paths.
func (a Api) NormalizePath(path string) string {
	// longest prefixes first so /temporal/entities wins over /entities
	candidates := []string{
		a.PostTemporal,
		a.Temporal,
		a.PostEntities,
		a.Entities,
		a.ConsumerAudit,
		a.ProviderAudit,
		a.AsyncSearch,
		a.AsyncStatus,
	}
	for _, c := range candidates {
		if strings.HasPrefix(path, c) {
			return c
		}
	}
	return ""
}
