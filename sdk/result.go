package sdk

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/mailru/easyjson"
)

// Result is the uniform outcome of a single API call
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Status  *int        `json:"status"`
	Error   *string     `json:"error"`
}

// StatusCode returns the failure status or 0 when none was recorded
func (r Result) StatusCode() int {
	if r.Status == nil {
		return 0
	}
	return *r.Status
}

// Message returns the failure message or an empty string
func (r Result) Message() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Bytes returns the raw payload of a download
func (r Result) Bytes() []byte {
	if b, ok := r.Data.([]byte); ok {
		return b
	}
	return nil
}

// Decode will re-decode the data into out
func (r Result) Decode(out interface{}) error {
	if !r.Success {
		return fmt.Errorf("cannot decode a failed result: %s", r.Message())
	}
	return MapToStruct(r.Data, out)
}

// errorBody is the subset of an API error response we care about
type errorBody struct {
	Message string
	present bool
}

// Envelope runs call and translates its outcome into a Result
func Envelope(call func() (interface{}, error)) Result {
	data, err := call()
	if err != nil {
		return failed(err)
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return Result{Success: true, Data: data}
}

// Failure returns a failed Result for a local precondition
func Failure(msg string) Result {
	return Result{Error: StringPointer(msg)}
}

func failed(err error) Result {
	msg := err.Error()
	var herr *HTTPError
	if errors.As(err, &herr) {
		if m, ok := remoteMessage(herr); ok {
			msg = m
		}
		return Result{Status: IntPointer(herr.StatusCode), Error: &msg}
	}
	var derr *DecodeError
	if errors.As(err, &derr) {
		return Result{Status: IntPointer(derr.StatusCode), Error: &msg}
	}
	// no response was received
	return Result{Status: IntPointer(0), Error: &msg}
}

func remoteMessage(herr *HTTPError) (string, bool) {
	if herr.Body == nil {
		return "", false
	}
	buf, err := ioutil.ReadAll(herr.Body)
	if err != nil || len(buf) == 0 {
		return "", false
	}
	var body errorBody
	if err := easyjson.Unmarshal(buf, &body); err != nil {
		return "", false
	}
	return body.Message, body.present
}
