package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1400: "country not found",
		1401: "no dataset available",
		1402: "dataset is loading",
		1403: "tracker unavailable",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorCountryNotFound    = errorJSON(1400)
	errorDataUnavailable    = errorJSON(1401)
	errorNotReady           = errorJSON(1402)
	errorTrackerUnavailable = errorJSON(1403)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
