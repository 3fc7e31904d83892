package util

import (
	"encoding/json"
	"net/http"
)

// Message writes a JSON body of the form {"message": ...}. Every
// success confirmation and error in the API uses this shape.
func Message(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
