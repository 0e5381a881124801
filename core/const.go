package core

const (
	AuthInfoCtxKey = "rs-authInfo"
	JwtDataCtxKey  = "rs-jwtData"
)

const (
	TokenHeader = "token"
)

const (
	SuccessURN          = "urn:dx:rs:success"
	InvalidTokenURN     = "urn:dx:rs:invalidAuthorizationToken"
	ResourceNotFoundURN = "urn:dx:rs:resourceNotFound"
	BackendErrorURN     = "urn:dx:rs:backendError"

	CatSuccessURN = "urn:dx:cat:Success"
)

const (
	CatSearchPath       = "/search"
	CatItemPath         = "/item"
	AuthCertificatePath = "/cert"
)

// Claim bundle forwarding headers, consumed by the downstream adapter
const (
	UserIDHeader = "x-rs-user-id"
	IidHeader    = "x-rs-iid"
	RoleHeader   = "x-rs-role"
	DrlHeader    = "x-rs-drl"
	DidHeader    = "x-rs-did"
	ApdHeader    = "x-rs-apd"
	ConsHeader   = "x-rs-cons"
	ExpiryHeader = "x-rs-expiry"
)
