package pkg

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// IntPathVar reads a positive integer route variable.
func IntPathVar(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, fmt.Errorf("path var %s empty", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path var %s NaN: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("path var %s not positive: %d", name, v)
	}
	return v, nil
}
