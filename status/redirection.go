package status

// 3xx: further action is needed to complete the request.
const (
	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	UseProxy          Code = 305 // RFC 9110, 15.4.6
	SwitchProxy       Code = 306 // RFC 9110, 15.4.7
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9
)

var redirection = []Entry{
	{Code: MultipleChoices, Name: "MULTIPLE_CHOICES", Description: "The target resource has more than one representation; the client should pick one, typically via the Location header or the payload."},
	{Code: MovedPermanently, Name: "MOVED_PERMANENTLY", Description: "The target resource has been assigned a new permanent URI; future references should use the URI in the Location header."},
	{Code: Found, Name: "FOUND", Description: "The target resource resides temporarily under a different URI; the client should continue to use the original URI for future requests."},
	{Code: SeeOther, Name: "SEE_OTHER", Description: "The server redirects the client to a different resource, usually retrieved with GET, that provides an indirect response to the request."},
	{Code: NotModified, Name: "NOT_MODIFIED", Description: "A conditional request evaluated false: the client's stored representation is still valid and no payload is sent."},
	{Code: UseProxy, Name: "USE_PROXY", Description: "The requested resource must be accessed through the proxy given in the Location header. Deprecated due to security concerns with in-band proxy configuration."},
	{Code: SwitchProxy, Name: "SWITCH_PROXY", Description: "Originally meant that subsequent requests should use the specified proxy. No longer used; the code is reserved."},
	{Code: TemporaryRedirect, Name: "TEMPORARY_REDIRECT", Description: "The target resource resides temporarily under a different URI; the client must not change the request method when following the redirect."},
	{Code: PermanentRedirect, Name: "PERMANENT_REDIRECT", Description: "The target resource has been permanently moved to another URI; the client must not change the request method when following the redirect."},
}
