package status

// 1xx: the request was received and processing continues.
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297
)

var informational = []Entry{
	{Code: Continue, Name: "CONTINUE", Description: "The initial part of the request has been received; the client should continue with the rest of the request, or ignore this response if the request is already complete."},
	{Code: SwitchingProtocols, Name: "SWITCHING_PROTOCOLS", Description: "The server agrees to switch to the protocol the client proposed in the Upgrade header field."},
	{Code: Processing, Name: "PROCESSING", Description: "WebDAV interim response: the server has accepted the full request but has not yet completed it, and no final status is available."},
	{Code: EarlyHints, Name: "EARLY_HINTS", Description: "Early header fields, typically Link, sent ahead of the final response so the client can begin preloading resources."},
}
