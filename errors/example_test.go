package errors_test

import (
	"encoding/json"
	"fmt"

	"github.com/jmgilman/go/parse/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeObjectNotFound, "object not found for get")
	fmt.Println(err.Error())
	// Output: [ObjectNotFound 101] object not found for get
}

func ExampleLookup() {
	def, _ := errors.Lookup(errors.CodeDuplicateValue)
	fmt.Println(int(def.Code), def.Name)
	fmt.Println(def.Description)
	// Output:
	// 137 DuplicateValue
	// A unique field was given a value that is already taken.
}

func ExampleCode_Names() {
	fmt.Println(errors.CodeFacebookIDMissing.Names())
	// Output: [LinkedIDMissing FacebookIDMissing]
}

func ExampleWrap() {
	cause := fmt.Errorf("dial tcp 10.0.0.1:443: connect: connection refused")
	err := errors.Wrap(cause, errors.CodeConnectionFailed, "query request failed")

	fmt.Println(errors.GetCode(err), errors.IsRetryable(err))
	// Output: ConnectionFailed true
}

func ExampleFromResponse() {
	err := errors.FromResponse([]byte(`{"code":202,"error":"username tester already taken"}`))

	switch errors.GetCode(err) {
	case errors.CodeUsernameTaken:
		fmt.Println("pick another username:", err.Message())
	default:
		fmt.Println("unexpected failure")
	}
	// Output: pick another username: username tester already taken
}

func ExampleToResult() {
	result := errors.ToResult(errors.New(errors.CodeCacheMiss, "no cached results"))
	data, _ := json.Marshal(result)
	fmt.Println(string(data))
	// Output: {"succeeded":false,"code":120,"message":"no cached results","classification":"PERMANENT"}
}

func ExampleIsRetryable() {
	transient := errors.New(errors.CodeRequestLimitExceeded, "too many requests")
	permanent := errors.New(errors.CodeInvalidKeyName, "invalid key")

	fmt.Println(errors.IsRetryable(transient))
	fmt.Println(errors.IsRetryable(permanent))
	// Output:
	// true
	// false
}
