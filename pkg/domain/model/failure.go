package model

import (
	"fmt"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Failure is the structured form of an error handed back to callers.
type Failure struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func NewFailure(err error) *Failure {
	if err == nil {
		return nil
	}

	f := &Failure{
		Kind:    types.ErrorKindOf(err),
		Message: err.Error(),
	}
	if goErr := goerr.Unwrap(err); goErr != nil {
		values := goErr.Values()
		if len(values) > 0 {
			f.Details = make(map[string]any, len(values))
			for k, v := range values {
				f.Details[fmt.Sprintf("%v", k)] = v
			}
		}
	}
	return f
}
