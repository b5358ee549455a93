package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/okulikov/campushub/models"
)

// unwrapEnvelope decodes the uniform {success, message, data} envelope from
// resp and returns the raw data payload.
//
// Both failure modes collapse into one [*RequestError]:
//   - non-2xx status: the envelope is still parsed for a server message when
//     the body is JSON, otherwise the message falls back to
//     "HTTP <status>: <status text>";
//   - 2xx with success=false: a business rejection, reported with the
//     server's message and the response status.
func unwrapEnvelope(resp *resty.Response) (json.RawMessage, error) {
	var envelope models.APIEnvelope
	parseErr := json.Unmarshal(resp.Body(), &envelope)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		message := ""
		if parseErr == nil {
			message = envelope.Message
		}
		return nil, newRequestError(resp.StatusCode(), message)
	}

	if parseErr != nil {
		return nil, newRequestError(resp.StatusCode(), "malformed server response")
	}
	if !envelope.Success {
		return nil, newRequestError(resp.StatusCode(), envelope.Message)
	}

	return envelope.Data, nil
}
