package status

// 2xx: the request was received, understood and accepted.
const (
	OK                          Code = 200 // RFC 9110, 15.3.1
	Created                     Code = 201 // RFC 9110, 15.3.2
	Accepted                    Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInformation Code = 203 // RFC 9110, 15.3.4
	NoContent                   Code = 204 // RFC 9110, 15.3.5
	ResetContent                Code = 205 // RFC 9110, 15.3.6
	PartialContent              Code = 206 // RFC 9110, 15.3.7
	MultiStatus                 Code = 207 // RFC 4918, 11.1
	AlreadyReported             Code = 208 // RFC 5842, 7.1
	IMUsed                      Code = 226 // RFC 3229, 10.4.1
)

var success = []Entry{
	{Code: OK, Name: "OK", Description: "The request has succeeded; the meaning of the payload depends on the request method."},
	{Code: Created, Name: "CREATED", Description: "The request has succeeded and one or more new resources have been created."},
	{Code: Accepted, Name: "ACCEPTED", Description: "The request has been accepted for processing, but the processing has not been completed and may ultimately fail."},
	{Code: NonAuthoritativeInformation, Name: "NON_AUTHORITATIVE_INFORMATION", Description: "The request succeeded, but the enclosed payload was modified by a transforming proxy from the origin server's response."},
	{Code: NoContent, Name: "NO_CONTENT", Description: "The request has succeeded and there is no additional content to send in the response body."},
	{Code: ResetContent, Name: "RESET_CONTENT", Description: "The request has succeeded and the client should reset the document view that caused the request, such as a form."},
	{Code: PartialContent, Name: "PARTIAL_CONTENT", Description: "The server is delivering only the part of the resource requested by a Range header field."},
	{Code: MultiStatus, Name: "MULTI_STATUS", Description: "WebDAV: the response body conveys multiple independent status values for multiple resources."},
	{Code: AlreadyReported, Name: "ALREADY_REPORTED", Description: "WebDAV: the members of a binding have already been enumerated earlier in the same response and are not repeated."},
	{Code: IMUsed, Name: "IM_USED", Description: "The response is a representation of the result of one or more instance manipulations applied to the current instance."},
}
