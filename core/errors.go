package core

type ErrorInvalidToken struct {
	Reason string
}

func (e ErrorInvalidToken) Error() string {
	return "Invalid Token: " + e.Reason
}

func NewErrorInvalidToken(reason string) ErrorInvalidToken {
	return ErrorInvalidToken{Reason: reason}
}

type ErrorInvalidAudience struct {
}

func (e ErrorInvalidAudience) Error() string {
	return "Incorrect audience value in token"
}

func NewErrorInvalidAudience() ErrorInvalidAudience {
	return ErrorInvalidAudience{}
}

type ErrorRevoked struct {
}

func (e ErrorRevoked) Error() string {
	return "Client privileges are revoked"
}

func NewErrorRevoked() ErrorRevoked {
	return ErrorRevoked{}
}

type ErrorNotFound struct {
	ID string
}

func (e ErrorNotFound) Error() string {
	if e.ID == "" {
		return "Not Found"
	}
	return "Not Found: " + e.ID
}

func NewErrorNotFound(id string) ErrorNotFound {
	return ErrorNotFound{ID: id}
}

type ErrorIDMismatch struct {
}

func (e ErrorIDMismatch) Error() string {
	return "Incorrect id value in token"
}

func NewErrorIDMismatch() ErrorIDMismatch {
	return ErrorIDMismatch{}
}

type ErrorAuthorizationDenied struct {
}

func (e ErrorAuthorizationDenied) Error() string {
	return "No access provided to endpoint"
}

func NewErrorAuthorizationDenied() ErrorAuthorizationDenied {
	return ErrorAuthorizationDenied{}
}

type ErrorUpstreamUnavailable struct {
	Cause error
}

func (e ErrorUpstreamUnavailable) Error() string {
	if e.Cause == nil {
		return "Upstream Unavailable"
	}
	return "Upstream Unavailable: " + e.Cause.Error()
}

func (e ErrorUpstreamUnavailable) Unwrap() error {
	return e.Cause
}

func NewErrorUpstreamUnavailable(cause error) ErrorUpstreamUnavailable {
	return ErrorUpstreamUnavailable{Cause: cause}
}
