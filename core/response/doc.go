// Package response carries the payloads returned by external speech and
// knowledge providers once a request has been dispatched. The types are plain
// data carriers; no validation decision reads them.
package response
