package core

import (
	"strings"
)

// Role is the DX role carried in the token
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleProvider Role = "provider"
	RoleDelegate Role = "delegate"
)

func RoleFromString(s string) Role {
	return Role(strings.ToLower(s))
}

// Effective returns the role access rules should be evaluated against.
// Delegate tokens act with the delegated role.
func (r Role) Effective(delegatedRole string) Role {
	if r == RoleDelegate && delegatedRole != "" {
		return RoleFromString(delegatedRole)
	}
	return r
}

// Consent is the consent object embedded in a DX token
type Consent struct {
	Access []string `json:"access,omitempty"`
}

func (c *Consent) HasAccess(class string) bool {
	if c == nil {
		return false
	}
	for _, a := range c.Access {
		if strings.EqualFold(a, class) {
			return true
		}
	}
	return false
}

// JwtData is the decoded claim set of a bearer token.
// Exp and Iat are attached by the validator from the verification result,
// since they are not always present as typed fields in the raw payload.
type JwtData struct {
	Iss  string   `json:"iss"`
	Sub  string   `json:"sub"`
	Aud  string   `json:"aud"`
	Exp  int64    `json:"exp"`
	Iat  int64    `json:"iat"`
	Iid  string   `json:"iid"`
	Role string   `json:"role"`
	Cons *Consent `json:"cons,omitempty"`
	Drl  string   `json:"drl,omitempty"`
	Did  string   `json:"did,omitempty"`
	Apd  string   `json:"apd,omitempty"`
}

// SelfIssued reports whether the token was issued by the caller itself
// rather than delegated through the auth server.
func (j JwtData) SelfIssued() bool {
	return j.Iss == j.Sub
}

// ResourceID is the id part of the internal resource id (iid), which has
// the form "namespace:resourceId".
func (j JwtData) ResourceID() string {
	parts := strings.SplitN(j.Iid, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// AuthContext is the normalized request context handed to the pipeline
// by the HTTP layer. Read-only to the core.
type AuthContext struct {
	Endpoint string
	Method   string
	Token    string
	ID       string
	IDs      []string
}

const (
	PolicyOpen   = "OPEN"
	PolicySecure = "SECURE"
)

// ResourcePolicy classifies a resource as publicly open or access controlled
type ResourcePolicy struct {
	ID           string
	AccessPolicy string
	GroupID      string
}

func (p ResourcePolicy) IsOpen() bool {
	return strings.EqualFold(p.AccessPolicy, PolicyOpen)
}

// ClaimBundle is the forwardable outcome of a successful introspection
type ClaimBundle struct {
	UserID string   `json:"userid"`
	Iid    string   `json:"iid,omitempty"`
	Role   string   `json:"role,omitempty"`
	Drl    string   `json:"drl,omitempty"`
	Did    string   `json:"did,omitempty"`
	Apd    string   `json:"apd,omitempty"`
	Cons   *Consent `json:"cons,omitempty"`
	Expiry string   `json:"expiry,omitempty"`
}

// CatalogueItem is a single result entry from the DX catalogue
type CatalogueItem struct {
	ID            string `json:"id"`
	AccessPolicy  string `json:"accessPolicy,omitempty"`
	ResourceGroup string `json:"resourceGroup,omitempty"`
}

// CatalogueResponse is the envelope of a catalogue search query
type CatalogueResponse struct {
	Type      string          `json:"type"`
	TotalHits int             `json:"totalHits"`
	Results   []CatalogueItem `json:"results"`
}

func (r CatalogueResponse) Succeeded() bool {
	return r.Type == CatSuccessURN && r.TotalHits > 0
}

// SearchQuery is a catalogue search by property/value with a result filter
type SearchQuery struct {
	Property string
	Value    string
	Filter   string
}
