package status

// 5xx: the server failed to fulfil an apparently valid request.
const (
	InternalServerError           Code = 500 // RFC 9110, 15.6.1
	NotImplemented                Code = 501 // RFC 9110, 15.6.2
	BadGateway                    Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable            Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout                Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 9110, 15.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

var serverError = []Entry{
	{Code: InternalServerError, Name: "INTERNAL_SERVER_ERROR", Description: "The server encountered an unexpected condition that prevented it from fulfilling the request."},
	{Code: NotImplemented, Name: "NOT_IMPLEMENTED", Description: "The server does not support the functionality required to fulfil the request, such as an unrecognised request method."},
	{Code: BadGateway, Name: "BAD_GATEWAY", Description: "The server, acting as a gateway or proxy, received an invalid response from an inbound server."},
	{Code: ServiceUnavailable, Name: "SERVICE_UNAVAILABLE", Description: "The server is currently unable to handle the request due to temporary overload or scheduled maintenance; Retry-After may indicate when to retry."},
	{Code: GatewayTimeout, Name: "GATEWAY_TIMEOUT", Description: "The server, acting as a gateway or proxy, did not receive a timely response from an upstream server."},
	{Code: HTTPVersionNotSupported, Name: "HTTP_VERSION_NOT_SUPPORTED", Description: "The server does not support, or refuses to support, the major HTTP version used in the request."},
	{Code: VariantAlsoNegotiates, Name: "VARIANT_ALSO_NEGOTIATES", Description: "The chosen variant resource is itself configured to engage in transparent content negotiation, so it is not a proper negotiation end point."},
	{Code: InsufficientStorage, Name: "INSUFFICIENT_STORAGE", Description: "WebDAV: the server is unable to store the representation needed to complete the request."},
	{Code: LoopDetected, Name: "LOOP_DETECTED", Description: "WebDAV: the server terminated the operation because it encountered an infinite loop while processing a request with Depth: infinity."},
	{Code: NotExtended, Name: "NOT_EXTENDED", Description: "Further extensions to the request are required for the server to fulfil it."},
	{Code: NetworkAuthenticationRequired, Name: "NETWORK_AUTHENTICATION_REQUIRED", Description: "The client needs to authenticate to gain network access, typically against a captive portal."},
}
