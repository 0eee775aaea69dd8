package status

// 4xx: the request is at fault.
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	Unauthorised                Code = 401 // RFC 9110, 15.5.2
	PaymentRequired             Code = 402 // RFC 9110, 15.5.3
	Forbidden                   Code = 403 // RFC 9110, 15.5.4
	NotFound                    Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed            Code = 405 // RFC 9110, 15.5.6
	NotAcceptable               Code = 406 // RFC 9110, 15.5.7
	ProxyAuthenticationRequired Code = 407 // RFC 9110, 15.5.8
	RequestTimeout              Code = 408 // RFC 9110, 15.5.9
	Conflict                    Code = 409 // RFC 9110, 15.5.10
	Gone                        Code = 410 // RFC 9110, 15.5.11
	LengthRequired              Code = 411 // RFC 9110, 15.5.12
	PreconditionFailed          Code = 412 // RFC 9110, 15.5.13
	PayloadTooLarge             Code = 413 // RFC 9110, 15.5.14
	URITooLong                  Code = 414 // RFC 9110, 15.5.15
	UnsupportedMediaType        Code = 415 // RFC 9110, 15.5.16
	RangeNotSatisfiable         Code = 416 // RFC 9110, 15.5.17
	ExpectationFailed           Code = 417 // RFC 9110, 15.5.18
	ImATeapot                   Code = 418 // RFC 2324, 2.3.2
	MisdirectedRequest          Code = 421 // RFC 9110, 15.5.20
	UnprocessableEntry          Code = 422 // RFC 9110, 15.5.21
	Locked                      Code = 423 // RFC 4918, 11.3
	FailedDependency            Code = 424 // RFC 4918, 11.4
	TooEarly                    Code = 425 // RFC 8470, 5.2
	UpgradeRequired             Code = 426 // RFC 9110, 15.5.22
	PreconditionRequired        Code = 428 // RFC 6585, 3
	TooManyRequests             Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons  Code = 451 // RFC 7725, 3
)

var clientError = []Entry{
	{Code: BadRequest, Name: "BAD_REQUEST", Description: "The server cannot or will not process the request due to something perceived to be a client error, such as malformed syntax or invalid framing."},
	{Code: Unauthorised, Name: "UNAUTHORISED", Description: "The request lacks valid authentication credentials for the target resource; the response carries a WWW-Authenticate challenge."},
	{Code: PaymentRequired, Name: "PAYMENT_REQUIRED", Description: "Reserved for future use. In practice its usage is inconsistent; some services return it when payment or quota is exhausted."},
	{Code: Forbidden, Name: "FORBIDDEN", Description: "The server understood the request but refuses to authorise it; re-authenticating makes no difference."},
	{Code: NotFound, Name: "NOT_FOUND", Description: "The origin server did not find a current representation for the target resource, or is not willing to disclose that one exists."},
	{Code: MethodNotAllowed, Name: "METHOD_NOT_ALLOWED", Description: "The method is known by the server but not supported by the target resource; the Allow header lists the supported methods."},
	{Code: NotAcceptable, Name: "NOT_ACCEPTABLE", Description: "The target resource has no representation acceptable under the request's proactive content negotiation headers."},
	{Code: ProxyAuthenticationRequired, Name: "PROXY_AUTHENTICATION_REQUIRED", Description: "The client must first authenticate itself with the proxy; the response carries a Proxy-Authenticate challenge."},
	{Code: RequestTimeout, Name: "REQUEST_TIMEOUT", Description: "The server did not receive a complete request within the time it was prepared to wait."},
	{Code: Conflict, Name: "CONFLICT", Description: "The request could not be completed due to a conflict with the current state of the target resource, such as an edit conflict or a version mismatch."},
	{Code: Gone, Name: "GONE", Description: "Access to the target resource is no longer available at the origin server and this condition is likely to be permanent."},
	{Code: LengthRequired, Name: "LENGTH_REQUIRED", Description: "The server refuses to accept the request without a defined Content-Length."},
	{Code: PreconditionFailed, Name: "PRECONDITION_FAILED", Description: "One or more conditions given in the request header fields evaluated to false when tested on the server."},
	{Code: PayloadTooLarge, Name: "PAYLOAD_TOO_LARGE", Description: "The request payload is larger than the server is willing or able to process."},
	{Code: URITooLong, Name: "URI_TOO_LONG", Description: "The request target is longer than the server is willing to interpret."},
	{Code: UnsupportedMediaType, Name: "UNSUPPORTED_MEDIA_TYPE", Description: "The payload is in a format not supported by the target resource for this method."},
	{Code: RangeNotSatisfiable, Name: "RANGE_NOT_SATISFIABLE", Description: "None of the ranges in the request's Range header field overlap the current extent of the selected resource."},
	{Code: ExpectationFailed, Name: "EXPECTATION_FAILED", Description: "The expectation given in the request's Expect header field could not be met by the server."},
	{Code: ImATeapot, Name: "IM_A_TEAPOT", Description: "An attempt to brew coffee with a teapot, per the Hyper Text Coffee Pot Control Protocol April Fools specification."},
	{Code: MisdirectedRequest, Name: "MISDIRECTED_REQUEST", Description: "The request was directed at a server that is not able or willing to produce an authoritative response for the target URI."},
	{Code: UnprocessableEntry, Name: "UNPROCESSABLE_ENTRY", Description: "The server understands the content type and syntax of the request, but was unable to process the contained instructions."},
	{Code: Locked, Name: "LOCKED", Description: "WebDAV: the source or destination resource of the method is locked."},
	{Code: FailedDependency, Name: "FAILED_DEPENDENCY", Description: "WebDAV: the method could not be performed because the requested action depended on another action that failed."},
	{Code: TooEarly, Name: "TOO_EARLY", Description: "The server is unwilling to risk processing a request that might be replayed, typically one sent in TLS early data."},
	{Code: UpgradeRequired, Name: "UPGRADE_REQUIRED", Description: "The server refuses to perform the request using the current protocol; the Upgrade header lists the required protocol."},
	{Code: PreconditionRequired, Name: "PRECONDITION_REQUIRED", Description: "The origin server requires the request to be conditional, to prevent lost-update conflicts."},
	{Code: TooManyRequests, Name: "TOO_MANY_REQUESTS", Description: "The user has sent too many requests in a given amount of time; Retry-After may indicate how long to wait."},
	{Code: RequestHeaderFieldsTooLarge, Name: "REQUEST_HEADER_FIELDS_TOO_LARGE", Description: "The server is unwilling to process the request because its header fields, individually or collectively, are too large."},
	{Code: UnavailableForLegalReasons, Name: "UNAVAILABLE_FOR_LEGAL_REASONS", Description: "The server is denying access to the resource as a consequence of a legal demand."},
}
