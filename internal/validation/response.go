package validation

import (
	"net/http"

	"github.com/2beens/gymlog/pkg"
)

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

// WriteErrors responds 422 with the offending fields.
func WriteErrors(w http.ResponseWriter, fieldErrs []FieldError) {
	if fieldErrs == nil {
		fieldErrs = []FieldError{}
	}
	pkg.WriteJSONResponse(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "validation failed",
		Fields: fieldErrs,
	})
}
