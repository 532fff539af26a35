package cloud

import (
	"net/http"

	"github.com/oracle/oci-go-sdk/v65/common"
)

// IsServiceError reports whether err came back from the provider API as
// a service-level failure (as opposed to a transport or local error).
func IsServiceError(err error) bool {
	_, ok := common.IsServiceError(err)
	return ok
}

// IsRetryable reports whether err is a transient provider-side failure
// worth retrying: throttling or a server-side error. Client-side
// rejections (bad request, conflict, not authorized) are not retryable.
func IsRetryable(err error) bool {
	serviceErr, ok := common.IsServiceError(err)
	if !ok {
		return false
	}
	status := serviceErr.GetHTTPStatusCode()
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
